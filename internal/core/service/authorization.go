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
)

const (
	stateKeyPrefix = "oauth_state:"

	// Used for implicit-grant fragments that omit expires_in.
	defaultImplicitTokenLifetime = time.Hour
)

type AuthorizationService struct {
	provider    port.IdentityProvider
	credentials port.CredentialStorage
	states      port.KeyValueStore
	guards      GuardFactory
	notifier    port.NotifierClient
	stateTTL    time.Duration
	now         func() time.Time
}

func NewAuthorizationService(
	provider port.IdentityProvider,
	credentials port.CredentialStorage,
	states port.KeyValueStore,
	guards GuardFactory,
	notifier port.NotifierClient,
) *AuthorizationService {
	return &AuthorizationService{
		provider:    provider,
		credentials: credentials,
		states:      states,
		guards:      guards,
		notifier:    notifier,
		stateTTL:    DefaultAttemptTTL,
		now:         time.Now,
	}
}

// BeginAuthorization records a connection attempt for the session and
// returns the provider URL the owner must be redirected to.
func (a *AuthorizationService) BeginAuthorization(ctx context.Context, ownerID uuid.UUID, session, redirectURI string) (*domain.RedirectTarget, error) {
	registered := a.provider.RedirectURL()
	if redirectURI != "" && redirectURI != registered {
		return nil, domain.NewError(domain.ErrRedirectURIMismatch, "redirect uri is not the registered callback", nil).
			WithContext("attempted_redirect_uri", redirectURI).
			WithContext("registered_redirect_uri", registered)
	}

	guard := a.guards(session)
	acquired, err := guard.TryAcquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.NewError(domain.ErrAlreadyInProgress, "another authorization attempt is still pending", nil)
	}

	state := uuid.NewString()
	if err := a.states.Set(ctx, stateKeyPrefix+state, ownerID.String(), a.stateTTL); err != nil {
		if releaseErr := guard.Release(ctx); releaseErr != nil {
			log.WithError(releaseErr).Warn("Failed to release connection attempt")
		}
		return nil, fmt.Errorf("failed to store authorization state: %w", err)
	}

	log.WithFields(log.Fields{
		"ownerID":     ownerID,
		"redirectURI": registered,
	}).Info("Authorization redirect issued")

	return &domain.RedirectTarget{
		URL:   a.provider.AuthCodeURL(state),
		State: state,
	}, nil
}

// CompleteAuthorization exchanges the callback code for tokens and stores
// them. The session's connection attempt is cleared on every path.
// A nil ownerID completes the flow for the owner that started it, as bound
// to the state; provider redirects carry no bearer token.
func (a *AuthorizationService) CompleteAuthorization(ctx context.Context, ownerID uuid.UUID, session string, params domain.CallbackParams) (*domain.OAuthCredential, error) {
	guard := a.guards(session)
	defer func() {
		if err := guard.Release(ctx); err != nil {
			log.WithError(err).WithField("ownerID", ownerID).Warn("Failed to release connection attempt")
		}
	}()

	if params.Error != "" {
		return nil, domain.ExchangeFailedError("authorization was not granted", errors.New(params.Error)).
			WithContext("provider_error", params.Error).
			WithContext("provider_error_description", params.ErrorDescription)
	}

	if missing := missingCallbackParameters(params); len(missing) > 0 {
		return nil, domain.NewError(domain.ErrMissingParameters, "callback is missing required parameters", nil).
			WithContext("missing", missing)
	}

	stateKey := stateKeyPrefix + params.State
	boundOwner, ok, err := a.states.Get(ctx, stateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read authorization state: %w", err)
	}
	if !ok || (ownerID != uuid.Nil && boundOwner != ownerID.String()) {
		return nil, domain.ExchangeFailedError("authorization state is unknown or expired", nil)
	}
	if ownerID == uuid.Nil {
		if ownerID, err = uuid.Parse(boundOwner); err != nil {
			return nil, domain.ExchangeFailedError("authorization state is corrupt", err)
		}
	}

	grant, err := a.grantFromCallback(ctx, params)
	if err != nil {
		return nil, err
	}

	credential := &domain.OAuthCredential{
		OwnerID:      ownerID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    grant.Expiry,
		UpdatedAt:    a.now(),
	}
	if credential.RefreshToken == "" {
		// Providers only issue a refresh token on first consent; keep the one we have.
		existing, err := a.credentials.GetCredential(ctx, ownerID)
		if err == nil && existing.RefreshToken != "" {
			credential.RefreshToken = existing.RefreshToken
		} else if err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
			return nil, fmt.Errorf("failed to load existing credential: %w", err)
		}
	}

	if err := a.credentials.SaveCredential(ctx, credential); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	if err := a.states.Delete(ctx, stateKey); err != nil {
		log.WithError(err).Warn("Failed to delete consumed authorization state")
	}

	log.WithFields(log.Fields{
		"ownerID":         ownerID,
		"expiresAt":       credential.ExpiresAt,
		"hasRefreshToken": credential.Renewable(),
	}).Info("Mail account connected")

	if err := a.notifier.NotifyConnectionChanged(ctx, &domain.ConnectionChangedMessage{
		OwnerID:    ownerID,
		Connected:  true,
		OccurredAt: a.now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish connection event")
	}

	return credential, nil
}

func (a *AuthorizationService) grantFromCallback(ctx context.Context, params domain.CallbackParams) (*domain.TokenGrant, error) {
	if params.Code == "" {
		lifetime := defaultImplicitTokenLifetime
		if params.ExpiresIn > 0 {
			lifetime = time.Duration(params.ExpiresIn) * time.Second
		}
		return &domain.TokenGrant{
			AccessToken: params.AccessToken,
			Expiry:      a.now().Add(lifetime),
		}, nil
	}

	grant, err := a.provider.Exchange(ctx, params.Code)
	if err != nil {
		if errors.Is(err, domain.ErrRedirectURIMismatch) || errors.Is(err, domain.ErrExchangeFailed) {
			return nil, err
		}
		return nil, domain.ExchangeFailedError("provider rejected the authorization code", err)
	}
	return grant, nil
}

func missingCallbackParameters(params domain.CallbackParams) []string {
	var missing []string
	if params.Code == "" && params.AccessToken == "" {
		missing = append(missing, "code")
	}
	if params.State == "" {
		missing = append(missing, "state")
	}
	return missing
}
