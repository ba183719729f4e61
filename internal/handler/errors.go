package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/core/domain"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, errNoOwner):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, domain.ErrMissingParameters):
		return http.StatusBadRequest, "missing_parameters"
	case errors.Is(err, domain.ErrNotConnected), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "not_connected"
	case errors.Is(err, domain.ErrAlreadyInProgress):
		return http.StatusConflict, "already_in_progress"
	case errors.Is(err, domain.ErrRedirectURIMismatch):
		return http.StatusInternalServerError, "redirect_uri_mismatch"
	case errors.Is(err, domain.ErrExchangeFailed):
		return http.StatusBadGateway, "exchange_failed"
	case errors.Is(err, domain.ErrSendFailed):
		return http.StatusBadGateway, "send_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondError writes err as JSON. Diagnostics are only exposed for
// configuration errors, which operators need to see.
func respondError(c echo.Context, err error) error {
	status, code := statusForError(err)
	resp := ErrorResponse{
		Error:   code,
		Message: domain.UserMessage(err),
	}
	if errors.Is(err, errNoOwner) {
		resp.Message = "Authentication required."
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) && errors.Is(err, domain.ErrRedirectURIMismatch) && len(domainErr.Context) > 0 {
		resp.Details = domainErr.Context
	}

	entry := log.WithError(err).WithField("code", code)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}

	return c.JSON(status, resp)
}
