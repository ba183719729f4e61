package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"stoik.com/outreach/internal/core/domain"
)

const GoogleRevokeURL = "https://oauth2.googleapis.com/revoke"

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Overrides for tests, zero values use Google's endpoints.
	Endpoint  oauth2.Endpoint
	RevokeURL string
}

// GoogleIdentityProvider implements port.IdentityProvider against Google OAuth 2.0.
type GoogleIdentityProvider struct {
	config     *oauth2.Config
	revokeURL  string
	httpClient *http.Client
}

func NewGoogleIdentityProvider(cfg GoogleOAuthConfig) *GoogleIdentityProvider {
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	revokeURL := cfg.RevokeURL
	if revokeURL == "" {
		revokeURL = GoogleRevokeURL
	}

	return &GoogleIdentityProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				gmail.GmailSendScope,
				gmail.GmailMetadataScope,
			},
			Endpoint: endpoint,
		},
		revokeURL:  revokeURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthCodeURL requests offline access with forced consent so a refresh token is issued.
func (p *GoogleIdentityProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (p *GoogleIdentityProvider) RedirectURL() string {
	return p.config.RedirectURL
}

func (p *GoogleIdentityProvider) Exchange(ctx context.Context, code string) (*domain.TokenGrant, error) {
	token, err := p.config.Exchange(p.withClient(ctx), code)
	if err != nil {
		return nil, p.exchangeError(err)
	}
	return grantFromToken(token), nil
}

func (p *GoogleIdentityProvider) Refresh(ctx context.Context, refreshToken string) (*domain.TokenGrant, error) {
	src := p.config.TokenSource(p.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return grantFromToken(token), nil
}

func (p *GoogleIdentityProvider) Revoke(ctx context.Context, token string) error {
	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("revoke returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (p *GoogleIdentityProvider) withClient(ctx context.Context) context.Context {
	if ctx.Value(oauth2.HTTPClient) != nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func (p *GoogleIdentityProvider) exchangeError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return domain.ExchangeFailedError("token endpoint unreachable", err)
	}

	if retrieveErr.ErrorCode == "redirect_uri_mismatch" {
		return domain.NewError(domain.ErrRedirectURIMismatch, "provider rejected the redirect uri", err).
			WithContext("attempted_redirect_uri", p.config.RedirectURL).
			WithContext("provider_response", string(retrieveErr.Body))
	}

	return domain.ExchangeFailedError("provider rejected the authorization code", err).
		WithContext("provider_error", retrieveErr.ErrorCode).
		WithContext("provider_error_description", retrieveErr.ErrorDescription)
}

func grantFromToken(token *oauth2.Token) *domain.TokenGrant {
	return &domain.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
}
