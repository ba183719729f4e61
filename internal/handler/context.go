package handler

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	OwnerIDKey = "ownerID"
	SessionKey = "session"
)

var errNoOwner = errors.New("no authenticated owner")

func ownerFromContext(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(OwnerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, errNoOwner
	}
	return ownerID, nil
}

func sessionFromContext(c echo.Context) string {
	session, _ := c.Get(SessionKey).(string)
	return session
}

var errUnsupportedRoutingKey = errors.New("unsupported routing key")
