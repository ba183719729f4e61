package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"stoik.com/outreach/internal/core/domain"
)

type CredentialStorage interface {
	// GetCredential returns domain.ErrCredentialNotFound when the owner has none.
	GetCredential(ctx context.Context, ownerID uuid.UUID) (*domain.OAuthCredential, error)
	SaveCredential(ctx context.Context, credential *domain.OAuthCredential) error
	DeleteCredential(ctx context.Context, ownerID uuid.UUID) error
}

type ThreadStorage interface {
	// GetThread returns nil, nil when the owner has no entry for the key.
	GetThread(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey) (*domain.ThreadEntry, error)
	// UpsertThread only touches the owner's entry, other owners' threads for the key survive.
	UpsertThread(ctx context.Context, ownerID uuid.UUID, key domain.ContextKey, entry domain.ThreadEntry) error
}

// KeyValueStore is the ephemeral per-session store backing connection attempts and OAuth state.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
