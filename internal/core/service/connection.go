package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/logging"
)

// DefaultExpiryMargin treats tokens expiring within a minute as already expired.
const DefaultExpiryMargin = 60 * time.Second

type ConnectionService struct {
	credentials port.CredentialStorage
	provider    port.IdentityProvider
	notifier    port.NotifierClient
	margin      time.Duration
	now         func() time.Time
}

func NewConnectionService(
	credentials port.CredentialStorage,
	provider port.IdentityProvider,
	notifier port.NotifierClient,
	margin time.Duration,
) *ConnectionService {
	if margin < 0 {
		margin = DefaultExpiryMargin
	}
	return &ConnectionService{
		credentials: credentials,
		provider:    provider,
		notifier:    notifier,
		margin:      margin,
		now:         time.Now,
	}
}

// CheckConnection reports the owner's credential state without side effects.
func (s *ConnectionService) CheckConnection(ctx context.Context, ownerID uuid.UUID) (domain.ConnectionStatus, error) {
	credential, err := s.credentials.GetCredential(ctx, ownerID)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return domain.ConnectionStatus{}, nil
	}
	if err != nil {
		return domain.ConnectionStatus{}, fmt.Errorf("failed to load credential: %w", err)
	}

	status := domain.ConnectionStatus{
		TokenPresent:    credential.AccessToken != "",
		Expired:         credential.ExpiredAt(s.now(), s.margin),
		HasRefreshToken: credential.Renewable(),
	}
	status.Connected = status.TokenPresent && !status.Expired
	status.NeedsRefresh = status.Expired && status.HasRefreshToken
	return status, nil
}

// Refresh renews the access token. It returns false when the credential
// cannot be renewed silently; the stored record is then left untouched and
// the owner has to authorize again.
func (s *ConnectionService) Refresh(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	credential, err := s.credentials.GetCredential(ctx, ownerID)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load credential: %w", err)
	}
	if !credential.Renewable() {
		log.WithField("ownerID", ownerID).Info("Credential has no refresh token, re-authorization required")
		return false, nil
	}

	grant, err := s.provider.Refresh(ctx, credential.RefreshToken)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"ownerID":      ownerID,
			"refreshToken": logging.MaskToken(credential.RefreshToken),
		}).Warn("Token refresh rejected by provider")
		return false, nil
	}

	refreshed := &domain.OAuthCredential{
		OwnerID:      ownerID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    grant.Expiry,
		UpdatedAt:    s.now(),
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = credential.RefreshToken
	}

	if err := s.credentials.SaveCredential(ctx, refreshed); err != nil {
		return false, fmt.Errorf("failed to store refreshed credential: %w", err)
	}

	log.WithFields(log.Fields{
		"ownerID":      ownerID,
		"expiresAt":    refreshed.ExpiresAt,
		"refreshToken": logging.MaskToken(refreshed.RefreshToken),
		"rotated":      refreshed.RefreshToken != credential.RefreshToken,
	}).Info("Access token refreshed")
	return true, nil
}

// Disconnect revokes the credential at the provider when possible and
// always deletes it locally.
func (s *ConnectionService) Disconnect(ctx context.Context, ownerID uuid.UUID) error {
	credential, err := s.credentials.GetCredential(ctx, ownerID)
	switch {
	case err == nil:
		token := credential.RefreshToken
		if token == "" {
			token = credential.AccessToken
		}
		if token != "" {
			if err := s.provider.Revoke(ctx, token); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"ownerID": ownerID,
					"token":   logging.MaskToken(token),
				}).Warn("Token revocation failed, deleting local credential anyway")
			}
		}
	case errors.Is(err, domain.ErrCredentialNotFound):
	default:
		log.WithError(err).WithField("ownerID", ownerID).Warn("Could not load credential for revocation")
	}

	if err := s.credentials.DeleteCredential(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	log.WithField("ownerID", ownerID).Info("Mail account disconnected")

	if err := s.notifier.NotifyConnectionChanged(ctx, &domain.ConnectionChangedMessage{
		OwnerID:    ownerID,
		Connected:  false,
		OccurredAt: s.now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish connection event")
	}
	return nil
}
