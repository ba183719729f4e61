package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"stoik.com/outreach/internal/core/domain"
)

// CredentialsStorage keeps one OAuth credential row per owner.
type CredentialsStorage struct {
	db *PostgresDB
}

func NewCredentialsStorage(db *PostgresDB) *CredentialsStorage {
	return &CredentialsStorage{
		db: db,
	}
}

func (s *CredentialsStorage) GetCredential(ctx context.Context, ownerID uuid.UUID) (*domain.OAuthCredential, error) {
	var (
		credential   domain.OAuthCredential
		refreshToken *string
	)
	err := s.db.QueryRow(ctx,
		`SELECT owner_id, access_token, refresh_token, expires_at, updated_at
		 FROM gmail_credentials
		 WHERE owner_id = $1`,
		ownerID,
	).Scan(&credential.OwnerID, &credential.AccessToken, &refreshToken, &credential.ExpiresAt, &credential.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}

	if refreshToken != nil {
		credential.RefreshToken = *refreshToken
	}
	return &credential, nil
}

// SaveCredential overwrites the whole record, last writer wins.
func (s *CredentialsStorage) SaveCredential(ctx context.Context, credential *domain.OAuthCredential) error {
	var refreshToken *string
	if credential.RefreshToken != "" {
		refreshToken = &credential.RefreshToken
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO gmail_credentials (owner_id, access_token, refresh_token, expires_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (owner_id)
		 DO UPDATE SET
		     access_token = EXCLUDED.access_token,
		     refresh_token = EXCLUDED.refresh_token,
		     expires_at = EXCLUDED.expires_at,
		     updated_at = EXCLUDED.updated_at`,
		credential.OwnerID,
		credential.AccessToken,
		refreshToken,
		credential.ExpiresAt,
		credential.UpdatedAt,
	)

	return err
}

func (s *CredentialsStorage) DeleteCredential(ctx context.Context, ownerID uuid.UUID) error {
	_, err := s.db.Exec(ctx, "DELETE FROM gmail_credentials WHERE owner_id = $1", ownerID)
	return err
}
