package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
)

type SendHTTPHandler struct {
	sendService port.SendService
	publisher   port.SendRequestPublisher
}

type ComposeLinkResponse struct {
	URL string `json:"url"`
}

type SendAcceptedResponse struct {
	Message   string    `json:"message"`
	RequestID uuid.UUID `json:"request_id"`
}

func NewSendHTTPHandler(sendService port.SendService, publisher port.SendRequestPublisher) *SendHTTPHandler {
	return &SendHTTPHandler{
		sendService: sendService,
		publisher:   publisher,
	}
}

func (h *SendHTTPHandler) Send() echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := h.bind(c)
		if err != nil {
			return respondError(c, err)
		}

		result, err := h.sendService.Send(c.Request().Context(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *SendHTTPHandler) SendAsync() echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := h.bind(c)
		if err != nil {
			return respondError(c, err)
		}

		message := &domain.SendRequestedMessage{
			RequestID:   uuid.New(),
			Request:     req,
			RequestedAt: time.Now().UTC(),
		}
		if err := h.publisher.PublishSendRequest(c.Request().Context(), message); err != nil {
			log.WithError(err).WithField("requestID", message.RequestID).Error("Failed to queue send request")
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "queue_unavailable",
				Message: "Sending is temporarily unavailable, please try again shortly.",
			})
		}

		return c.JSON(http.StatusAccepted, SendAcceptedResponse{
			Message:   "Send queued",
			RequestID: message.RequestID,
		})
	}
}

func (h *SendHTTPHandler) ComposeLink() echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := h.bind(c)
		if err != nil {
			return respondError(c, err)
		}

		link, err := h.sendService.ComposeExternally(req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, ComposeLinkResponse{URL: link})
	}
}

// bind decodes a send request and pins it to the authenticated owner.
func (h *SendHTTPHandler) bind(c echo.Context) (domain.SendRequest, error) {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		return domain.SendRequest{}, err
	}

	var req domain.SendRequest
	if err := c.Bind(&req); err != nil {
		return domain.SendRequest{}, domain.ValidationError("invalid request payload", err)
	}
	req.OwnerID = ownerID
	return req, nil
}
