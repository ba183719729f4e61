package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
)

const gmailUser = "me"

type GmailConfig struct {
	// Endpoint overrides the Gmail API base URL, used by tests.
	Endpoint string
}

// GmailSender implements port.MailSender on the Gmail API with the owner's
// stored access token. It never refreshes tokens itself.
type GmailSender struct {
	credentials port.CredentialStorage
	endpoint    string
	cb          *gobreaker.CircuitBreaker
	now         func() time.Time
}

func NewGmailSender(credentials port.CredentialStorage, cfg GmailConfig) *GmailSender {
	cbSettings := gobreaker.Settings{
		Name:        "gmail-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		// Client errors say nothing about Gmail's health.
		IsSuccessful: func(err error) bool {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				return apiErr.Code < 500
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &GmailSender{
		credentials: credentials,
		endpoint:    cfg.Endpoint,
		cb:          gobreaker.NewCircuitBreaker(cbSettings),
		now:         time.Now,
	}
}

func (g *GmailSender) Send(ctx context.Context, msg domain.OutgoingMessage) (*domain.SendResult, error) {
	credential, err := g.credentials.GetCredential(ctx, msg.OwnerID)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return nil, domain.NotConnectedError("no mail credential on file", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	svc, err := g.service(ctx, credential.AccessToken)
	if err != nil {
		return nil, err
	}

	var anchor *threadAnchor
	if msg.MessageID != "" {
		anchor, err = g.fetchAnchor(ctx, svc, msg.MessageID)
		if err != nil {
			return nil, err
		}
	}

	var from string
	if msg.SenderName != "" {
		var profile *gmail.Profile
		err := g.execute(func() error {
			var apiErr error
			profile, apiErr = svc.Users.GetProfile(gmailUser).Context(ctx).Do()
			return apiErr
		})
		if err != nil {
			return nil, wrapGmailError(err, "failed to load sender profile")
		}
		from = profile.EmailAddress
	}

	raw, rfcMessageID, err := buildRawMessage(msg, from, anchor, g.now())
	if err != nil {
		return nil, err
	}

	threadID := msg.ThreadID
	if threadID == "" && anchor != nil {
		threadID = anchor.ThreadID
	}
	gmailMsg := &gmail.Message{
		Raw:      base64.URLEncoding.EncodeToString(raw),
		ThreadId: threadID,
	}

	var sent *gmail.Message
	err = g.execute(func() error {
		var apiErr error
		sent, apiErr = svc.Users.Messages.Send(gmailUser, gmailMsg).Context(ctx).Do()
		return apiErr
	})
	if err != nil {
		return nil, wrapGmailError(err, "failed to send message")
	}

	// Gmail normally keeps our Message-ID, prefer what it actually stored.
	if stored, err := g.fetchAnchor(ctx, svc, sent.Id); err == nil && stored != nil && stored.MessageID != "" {
		rfcMessageID = "<" + stored.MessageID + ">"
	} else if err != nil {
		log.WithError(err).WithField("messageID", sent.Id).Debug("Could not read back Message-ID, using generated one")
	}

	return &domain.SendResult{
		ThreadID:     sent.ThreadId,
		MessageID:    sent.Id,
		RFCMessageID: rfcMessageID,
	}, nil
}

func (g *GmailSender) service(ctx context.Context, accessToken string) (*gmail.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, src))}
	if g.endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.endpoint))
	}

	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return svc, nil
}

// fetchAnchor reads the threading headers of an existing message. A missing
// message is not an error: the reply then goes out without reply headers.
func (g *GmailSender) fetchAnchor(ctx context.Context, svc *gmail.Service, messageID string) (*threadAnchor, error) {
	var original *gmail.Message
	err := g.execute(func() error {
		var apiErr error
		original, apiErr = svc.Users.Messages.Get(gmailUser, messageID).
			Format("metadata").
			MetadataHeaders("Message-ID", "References", "Subject").
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			log.WithField("messageID", messageID).Warn("Thread anchor message not found, sending without reply headers")
			return nil, nil
		}
		return nil, wrapGmailError(err, "failed to load thread anchor")
	}

	anchor := &threadAnchor{ThreadID: original.ThreadId}
	if original.Payload == nil {
		return anchor, nil
	}
	for _, header := range original.Payload.Headers {
		switch http.CanonicalHeaderKey(header.Name) {
		case "Message-Id":
			if ids := parseMsgIDs(header.Value); len(ids) > 0 {
				anchor.MessageID = ids[0]
			}
		case "References":
			anchor.References = parseMsgIDs(header.Value)
		case "Subject":
			anchor.Subject = header.Value
		}
	}
	return anchor, nil
}

func (g *GmailSender) execute(fn func() error) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// wrapGmailError marks rejected credentials with domain.ErrTokenExpired so
// the send pipeline can refresh and retry.
func wrapGmailError(err error, message string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return domain.NewError(domain.ErrTokenExpired, "access token rejected", err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
