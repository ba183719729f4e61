package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/handler"
)

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Healthy() bool
}

type Options struct {
	JWTSecret         []byte
	SendRatePerMinute int
}

type HTTPServer struct {
	echo   *echo.Echo
	broker HealthChecker
}

func NewHTTPServer(
	opts Options,
	authorization port.AuthorizationService,
	connections port.ConnectionService,
	sendService port.SendService,
	cache port.ConnectionCache,
	publisher port.SendRequestPublisher,
	broker HealthChecker,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":    v.Method,
				"path":      v.URIPath,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"requestID": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("Request error")
				return nil
			}
			entry.Info("Request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:   e,
		broker: broker,
	}

	// Initialize handlers
	gmailHandler := handler.NewGmailHTTPHandler(authorization, connections, cache)
	sendHandler := handler.NewSendHTTPHandler(sendService, publisher)

	// Routes
	e.GET("/health", server.healthCheck)
	// Provider redirects land here without a bearer token, the state names the owner.
	e.GET("/api/v1/gmail/callback", gmailHandler.Callback(), Session())

	api := e.Group("/api/v1", OwnerAuth(opts.JWTSecret), Session())

	gmail := api.Group("/gmail")
	gmail.POST("/connect", gmailHandler.Connect())
	gmail.POST("/callback", gmailHandler.CallbackURL())
	gmail.GET("/status", gmailHandler.Status())
	gmail.POST("/refresh", gmailHandler.Refresh())
	gmail.DELETE("/connection", gmailHandler.Disconnect())

	emails := api.Group("/emails")
	emails.POST("/compose-link", sendHandler.ComposeLink())
	limited := emails.Group("", sendRateLimiter(opts.SendRatePerMinute))
	limited.POST("/send", sendHandler.Send())
	limited.POST("/send/async", sendHandler.SendAsync())

	return server
}

// sendRateLimiter throttles sends per owner.
func sendRateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 30
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if ownerID, ok := c.Get(handler.OwnerIDKey).(uuid.UUID); ok {
				return ownerID.String(), nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			log.WithField("identifier", identifier).Warn("Send rate limit exceeded")
			return c.JSON(http.StatusTooManyRequests, handler.ErrorResponse{
				Error:   "rate_limited",
				Message: "Too many emails sent in a short time. Please wait a minute and try again.",
			})
		},
	})
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	if s.broker != nil && !s.broker.Healthy() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "degraded",
			"service": "outreach-api",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "outreach-api",
	})
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
