package port

import (
	"context"

	"stoik.com/outreach/internal/core/domain"
)

type NotifierClient interface {
	NotifyMailSent(ctx context.Context, message *domain.MailSentMessage) error
	NotifyConnectionChanged(ctx context.Context, message *domain.ConnectionChangedMessage) error
}

type SendRequestPublisher interface {
	PublishSendRequest(ctx context.Context, message *domain.SendRequestedMessage) error
}

// IdentityProvider speaks the OAuth 2.0 authorization-code grant.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	RedirectURL() string
	Exchange(ctx context.Context, code string) (*domain.TokenGrant, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenGrant, error)
	Revoke(ctx context.Context, token string) error
}

// MailSender is the mail-send API. Rejected access tokens are reported
// as errors matching domain.ErrTokenExpired.
type MailSender interface {
	Send(ctx context.Context, message domain.OutgoingMessage) (*domain.SendResult, error)
}
