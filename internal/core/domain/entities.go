package domain

import (
	"time"

	"github.com/google/uuid"
)

// OAuthCredential is the single live mail credential of an owner.
type OAuthCredential struct {
	OwnerID      uuid.UUID
	AccessToken  string
	RefreshToken string // empty when the provider did not issue one
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// Renewable reports whether the credential can be refreshed without user interaction.
func (c *OAuthCredential) Renewable() bool {
	return c.RefreshToken != ""
}

// ExpiredAt reports whether the access token is expired, or expires within margin, at now.
func (c *OAuthCredential) ExpiredAt(now time.Time, margin time.Duration) bool {
	return !now.Add(margin).Before(c.ExpiresAt)
}

type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

type ConnectionStatus struct {
	Connected       bool `json:"connected"`
	Expired         bool `json:"expired"`
	TokenPresent    bool `json:"token_present"`
	NeedsRefresh    bool `json:"needs_refresh"`
	HasRefreshToken bool `json:"has_refresh_token"`
}

type RedirectTarget struct {
	URL   string `json:"redirect_url"`
	State string `json:"-"`
}

// CallbackParams is the normalized shape of an OAuth callback, whether it
// arrived as a query string or a URL fragment.
type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string

	// Set only by implicit-grant fragments.
	AccessToken string
	ExpiresIn   int64
}

// ContextKey identifies one conversation: a candidate contacted about a job.
type ContextKey struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
}

// Complete reports whether both halves of the key are present.
func (k ContextKey) Complete() bool {
	return k.JobID != uuid.Nil && k.CandidateID != uuid.Nil
}

type ThreadEntry struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	ThreadID  string    `json:"thread_id"`
	MessageID string    `json:"message_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SendRequest struct {
	OwnerID     uuid.UUID `json:"owner_id" validate:"required"`
	To          string    `json:"to" validate:"required,email"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body" validate:"required"`
	SenderName  string    `json:"sender_name"`
	JobTitle    string    `json:"job_title,omitempty"`
	JobID       uuid.UUID `json:"job_id,omitempty"`
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	ThreadID    string    `json:"thread_id,omitempty"`
	MessageID   string    `json:"message_id,omitempty"`
}

func (r SendRequest) ContextKey() ContextKey {
	return ContextKey{JobID: r.JobID, CandidateID: r.CandidateID}
}

// OutgoingMessage is what the mail-send API receives.
type OutgoingMessage struct {
	OwnerID    uuid.UUID
	To         string
	Cc         string
	Subject    string // empty when replying within an existing thread
	Body       string
	SenderName string
	ThreadID   string
	MessageID  string // provider id of the message being replied to
}

type SendResult struct {
	ThreadID     string `json:"thread_id"`
	MessageID    string `json:"message_id"`
	RFCMessageID string `json:"rfc_message_id"`
}
