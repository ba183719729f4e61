package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	log "github.com/sirupsen/logrus"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/logging"
)

const (
	// One initial attempt plus one retry after a token refresh.
	maxSendAttempts = 2

	DefaultConnectionCacheTTL = 45 * time.Second

	gmailComposeURL = "https://mail.google.com/mail/"
)

type SendService struct {
	connections port.ConnectionService
	threads     port.ThreadRegistry
	sender      port.MailSender
	notifier    port.NotifierClient
	validate    *validator.Validate
	internalCc  string
	verdicts    *ttlcache.Cache[uuid.UUID, domain.ConnectionStatus]
	now         func() time.Time
}

func NewSendService(
	connections port.ConnectionService,
	threads port.ThreadRegistry,
	sender port.MailSender,
	notifier port.NotifierClient,
	validate *validator.Validate,
	internalCc string,
	cacheTTL time.Duration,
) *SendService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultConnectionCacheTTL
	}
	return &SendService{
		connections: connections,
		threads:     threads,
		sender:      sender,
		notifier:    notifier,
		validate:    validate,
		internalCc:  internalCc,
		verdicts: ttlcache.New[uuid.UUID, domain.ConnectionStatus](
			ttlcache.WithTTL[uuid.UUID, domain.ConnectionStatus](cacheTTL),
			ttlcache.WithDisableTouchOnHit[uuid.UUID, domain.ConnectionStatus](),
		),
		now: time.Now,
	}
}

// Send delivers one message through the owner's mail account and records
// the resulting thread for the request's job and candidate.
func (s *SendService) Send(ctx context.Context, request domain.SendRequest) (*domain.SendResult, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	if err := s.ensureConnected(ctx, request.OwnerID); err != nil {
		return nil, err
	}

	threadID, replyTo := s.threadHints(ctx, request)
	message := s.buildMessage(request, threadID, replyTo)

	fields := log.Fields{
		"ownerID":     request.OwnerID,
		"to":          logging.MaskEmail(request.To),
		"jobID":       request.JobID,
		"candidateID": request.CandidateID,
		"reply":       threadID != "",
	}

	var (
		result *domain.SendResult
		err    error
	)
	for attempt := 0; attempt < maxSendAttempts; attempt++ {
		result, err = s.sender.Send(ctx, message)
		if err == nil {
			break
		}
		s.verdicts.Delete(request.OwnerID)

		if !isTokenFailure(err) || attempt == maxSendAttempts-1 {
			log.WithError(err).WithFields(fields).WithField("attempt", attempt+1).Error("Send failed")
			return nil, domain.SendFailedError("the mail provider rejected the message", err)
		}

		refreshed, refreshErr := s.connections.Refresh(ctx, request.OwnerID)
		if refreshErr != nil || !refreshed {
			log.WithError(refreshErr).WithFields(fields).Warn("Token rejected and refresh failed")
			return nil, domain.NotConnectedError("mail credential was rejected and could not be refreshed", err)
		}
		log.WithFields(fields).Info("Token rejected by provider, retrying after refresh")
	}

	s.verdicts.Set(request.OwnerID, domain.ConnectionStatus{Connected: true, TokenPresent: true}, ttlcache.DefaultTTL)

	if err := s.threads.Record(ctx, request.OwnerID, request.ContextKey(), result.ThreadID, result.MessageID); err != nil {
		// The mail is already out; only future threading suffers.
		log.WithError(err).WithFields(fields).Warn("Failed to record thread")
	}

	log.WithFields(fields).WithFields(log.Fields{
		"threadID":  result.ThreadID,
		"messageID": result.MessageID,
	}).Info("Email sent")

	if err := s.notifier.NotifyMailSent(ctx, &domain.MailSentMessage{
		OwnerID:      request.OwnerID,
		JobID:        request.JobID,
		CandidateID:  request.CandidateID,
		ThreadID:     result.ThreadID,
		MessageID:    result.MessageID,
		RFCMessageID: result.RFCMessageID,
		SentAt:       s.now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish mail sent event")
	}

	return result, nil
}

// ComposeExternally builds a webmail compose link for sending by hand.
// No network call is made and no thread is recorded.
func (s *SendService) ComposeExternally(request domain.SendRequest) (string, error) {
	if strings.TrimSpace(request.To) == "" {
		return "", domain.ValidationError("recipient is required", nil)
	}

	values := url.Values{}
	values.Set("view", "cm")
	values.Set("fs", "1")
	values.Set("to", request.To)
	if s.internalCc != "" {
		values.Set("cc", s.internalCc)
	}
	if subject := newThreadSubject(request); subject != "" {
		values.Set("su", subject)
	}
	if request.Body != "" {
		values.Set("body", request.Body)
	}
	return gmailComposeURL + "?" + values.Encode(), nil
}

// InvalidateConnection drops the cached connection verdict for an owner.
func (s *SendService) InvalidateConnection(ownerID uuid.UUID) {
	s.verdicts.Delete(ownerID)
}

func (s *SendService) validateRequest(request domain.SendRequest) error {
	if err := s.validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			problems := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				problems = append(problems, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), describeTag(fe.Tag())))
			}
			return domain.ValidationError(strings.Join(problems, ", "), err)
		}
		return domain.ValidationError("request is invalid", err)
	}
	if strings.TrimSpace(request.Body) == "" {
		return domain.ValidationError("body is required", nil)
	}
	return nil
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email":
		return "not a valid email address"
	default:
		return "invalid"
	}
}

func (s *SendService) ensureConnected(ctx context.Context, ownerID uuid.UUID) error {
	if item := s.verdicts.Get(ownerID); item != nil && item.Value().Connected {
		return nil
	}

	status, err := s.connections.CheckConnection(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to check connection: %w", err)
	}
	if !status.TokenPresent {
		return domain.NotConnectedError("no mail credential on file", nil)
	}
	if status.Expired {
		if !status.HasRefreshToken {
			return domain.NotConnectedError("mail credential expired and cannot be renewed", nil)
		}
		refreshed, err := s.connections.Refresh(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to refresh credential: %w", err)
		}
		if !refreshed {
			return domain.NotConnectedError("mail credential expired and could not be refreshed", nil)
		}
	}

	s.verdicts.Set(ownerID, domain.ConnectionStatus{Connected: true, TokenPresent: true}, ttlcache.DefaultTTL)
	return nil
}

// threadHints prefers ids given by the caller over the registry.
func (s *SendService) threadHints(ctx context.Context, request domain.SendRequest) (string, string) {
	if request.ThreadID != "" || request.MessageID != "" {
		return request.ThreadID, request.MessageID
	}
	entry, err := s.threads.Lookup(ctx, request.OwnerID, request.ContextKey())
	if err != nil {
		log.WithError(err).WithField("ownerID", request.OwnerID).Warn("Thread lookup failed, starting a new thread")
		return "", ""
	}
	if entry == nil {
		return "", ""
	}
	return entry.ThreadID, entry.MessageID
}

func (s *SendService) buildMessage(request domain.SendRequest, threadID, replyTo string) domain.OutgoingMessage {
	message := domain.OutgoingMessage{
		OwnerID:    request.OwnerID,
		To:         request.To,
		Cc:         s.internalCc,
		Body:       request.Body,
		SenderName: request.SenderName,
		ThreadID:   threadID,
		MessageID:  replyTo,
	}
	// Replies take their subject from the anchor message.
	if threadID == "" && replyTo == "" {
		message.Subject = newThreadSubject(request)
	}
	return message
}

func newThreadSubject(request domain.SendRequest) string {
	if request.Subject != "" || request.JobTitle == "" {
		return request.Subject
	}
	return request.JobTitle + " opportunity"
}

func isTokenFailure(err error) bool {
	if errors.Is(err, domain.ErrTokenExpired) || errors.Is(err, domain.ErrNotConnected) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "token expired") || strings.Contains(msg, "not connected")
}
