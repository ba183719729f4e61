package port

import (
	"context"

	"github.com/google/uuid"
	"stoik.com/outreach/internal/core/domain"
)

type AuthorizationService interface {
	BeginAuthorization(ctx context.Context, ownerID uuid.UUID, session, redirectURI string) (*domain.RedirectTarget, error)
	CompleteAuthorization(ctx context.Context, ownerID uuid.UUID, session string, params domain.CallbackParams) (*domain.OAuthCredential, error)
}

type ConnectionService interface {
	CheckConnection(ctx context.Context, ownerID uuid.UUID) (domain.ConnectionStatus, error)
	Refresh(ctx context.Context, ownerID uuid.UUID) (bool, error)
	Disconnect(ctx context.Context, ownerID uuid.UUID) error
}

type ThreadRegistry interface {
	Lookup(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey) (*domain.ThreadEntry, error)
	Record(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey, threadID, messageID string) error
}

type SendService interface {
	Send(ctx context.Context, request domain.SendRequest) (*domain.SendResult, error)
	ComposeExternally(request domain.SendRequest) (string, error)
}

// ConnectionCache drops cached "connected" verdicts, e.g. after a disconnect.
type ConnectionCache interface {
	InvalidateConnection(ownerID uuid.UUID)
}
