package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/handler"
)

const SessionCookie = "outreach_session"

var errMissingBearer = errors.New("missing bearer token")

// OwnerAuth authenticates the caller from an HS256 bearer token whose
// subject is the owner's id.
func OwnerAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID, err := ownerFromRequest(parser, secret, c.Request())
			if err != nil {
				log.WithError(err).Debug("Rejected unauthenticated request")
				return c.JSON(http.StatusUnauthorized, handler.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required.",
				})
			}
			c.Set(handler.OwnerIDKey, ownerID)
			return next(c)
		}
	}
}

func ownerFromRequest(parser *jwt.Parser, secret []byte, r *http.Request) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(r.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || raw == "" {
		return uuid.Nil, errMissingBearer
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return uuid.Nil, err
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return ownerID, nil
}

// Session ties a browser to its own connection attempts, issuing a
// session cookie on first sight.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := ""
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				session = cookie.Value
			}
			if _, err := uuid.Parse(session); err != nil {
				session = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    session,
					Path:     "/",
					HttpOnly: true,
					Secure:   c.Request().TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(handler.SessionKey, session)
			return next(c)
		}
	}
}
