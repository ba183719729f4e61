package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/core/service"
)

type GmailHTTPHandler struct {
	authorization port.AuthorizationService
	connections   port.ConnectionService
	cache         port.ConnectionCache
}

type ConnectRequest struct {
	RedirectURI string `json:"redirect_uri"`
}

type CallbackRequest struct {
	CallbackURL string `json:"callback_url"`
}

type CallbackResponse struct {
	Connected bool      `json:"connected"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RefreshResponse struct {
	Refreshed bool `json:"refreshed"`
}

func NewGmailHTTPHandler(
	authorization port.AuthorizationService,
	connections port.ConnectionService,
	cache port.ConnectionCache,
) *GmailHTTPHandler {
	return &GmailHTTPHandler{
		authorization: authorization,
		connections:   connections,
		cache:         cache,
	}
}

func (h *GmailHTTPHandler) Connect() echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFromContext(c)
		if err != nil {
			return respondError(c, err)
		}

		var req ConnectRequest
		if c.Request().ContentLength > 0 {
			if err := c.Bind(&req); err != nil {
				return respondError(c, domain.ValidationError("invalid request payload", err))
			}
		}

		target, err := h.authorization.BeginAuthorization(c.Request().Context(), ownerID, sessionFromContext(c), req.RedirectURI)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, target)
	}
}

// Callback completes a flow from the provider's redirect query string. The
// redirect is a plain browser navigation, so the owner comes from the state
// when no bearer token was presented.
func (h *GmailHTTPHandler) Callback() echo.HandlerFunc {
	return func(c echo.Context) error {
		params, err := service.ParseCallbackQuery(c.Request().URL.RawQuery)
		if err != nil {
			return respondError(c, domain.NewError(domain.ErrMissingParameters, "callback query is malformed", err))
		}
		ownerID, _ := c.Get(OwnerIDKey).(uuid.UUID)
		return h.complete(c, ownerID, params)
	}
}

// CallbackURL completes a flow from a full callback URL captured by the
// browser, which may carry its parameters in the fragment.
func (h *GmailHTTPHandler) CallbackURL() echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFromContext(c)
		if err != nil {
			return respondError(c, err)
		}

		var req CallbackRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, domain.ValidationError("invalid request payload", err))
		}

		params, err := service.NormalizeCallback(req.CallbackURL)
		if err != nil {
			return respondError(c, err)
		}
		return h.complete(c, ownerID, params)
	}
}

func (h *GmailHTTPHandler) complete(c echo.Context, ownerID uuid.UUID, params domain.CallbackParams) error {
	credential, err := h.authorization.CompleteAuthorization(c.Request().Context(), ownerID, sessionFromContext(c), params)
	if err != nil {
		return respondError(c, err)
	}
	h.cache.InvalidateConnection(credential.OwnerID)

	return c.JSON(http.StatusOK, CallbackResponse{
		Connected: true,
		ExpiresAt: credential.ExpiresAt,
	})
}

func (h *GmailHTTPHandler) Status() echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFromContext(c)
		if err != nil {
			return respondError(c, err)
		}

		status, err := h.connections.CheckConnection(c.Request().Context(), ownerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, status)
	}
}

func (h *GmailHTTPHandler) Refresh() echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFromContext(c)
		if err != nil {
			return respondError(c, err)
		}

		refreshed, err := h.connections.Refresh(c.Request().Context(), ownerID)
		if err != nil {
			return respondError(c, err)
		}
		if !refreshed {
			h.cache.InvalidateConnection(ownerID)
		}
		return c.JSON(http.StatusOK, RefreshResponse{Refreshed: refreshed})
	}
}

func (h *GmailHTTPHandler) Disconnect() echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFromContext(c)
		if err != nil {
			return respondError(c, err)
		}

		h.cache.InvalidateConnection(ownerID)
		if err := h.connections.Disconnect(c.Request().Context(), ownerID); err != nil {
			return respondError(c, err)
		}

		log.WithField("ownerID", ownerID).Info("Mail account disconnected")
		return c.NoContent(http.StatusNoContent)
	}
}
