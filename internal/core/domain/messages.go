package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoutingKeyMailSent              = "mail.sent"
	RoutingKeySendRequested         = "mail.send.requested"
	RoutingKeyConnectionEstablished = "mail.connection.established"
	RoutingKeyConnectionRevoked     = "mail.connection.revoked"
)

type MailSentMessage struct {
	OwnerID      uuid.UUID `json:"owner_id" validate:"required"`
	JobID        uuid.UUID `json:"job_id"`
	CandidateID  uuid.UUID `json:"candidate_id"`
	ThreadID     string    `json:"thread_id" validate:"required"`
	MessageID    string    `json:"message_id" validate:"required"`
	RFCMessageID string    `json:"rfc_message_id"`
	SentAt       time.Time `json:"sent_at" validate:"required"`
}

type ConnectionChangedMessage struct {
	OwnerID    uuid.UUID `json:"owner_id" validate:"required"`
	Connected  bool      `json:"connected"`
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
}

// SendRequestedMessage carries a send to be performed by the send worker.
type SendRequestedMessage struct {
	RequestID   uuid.UUID   `json:"request_id" validate:"required"`
	Request     SendRequest `json:"request" validate:"required"`
	RequestedAt time.Time   `json:"requested_at" validate:"required"`
}
