package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/mocks"
)

const internalCc = "recruiting@stoik.io"

var connected = domain.ConnectionStatus{Connected: true, TokenPresent: true, HasRefreshToken: true}

type SendServiceSuite struct {
	suite.Suite
	connections *mocks.ConnectionService
	threads     *mocks.ThreadRegistry
	sender      *mocks.MailSender
	notifier    *mocks.NotifierClient
	service     *SendService
	ownerID     uuid.UUID
	key         domain.ContextKey
}

func TestSendService(t *testing.T) {
	suite.Run(t, new(SendServiceSuite))
}

func (suite *SendServiceSuite) SetupTest() {
	suite.connections = &mocks.ConnectionService{}
	suite.threads = &mocks.ThreadRegistry{}
	suite.sender = &mocks.MailSender{}
	suite.notifier = &mocks.NotifierClient{}
	suite.service = NewSendService(
		suite.connections,
		suite.threads,
		suite.sender,
		suite.notifier,
		validator.New(),
		internalCc,
		time.Minute,
	)
	suite.ownerID = uuid.New()
	suite.key = domain.ContextKey{JobID: uuid.New(), CandidateID: uuid.New()}
}

func (suite *SendServiceSuite) TearDownTest() {
	suite.connections.AssertExpectations(suite.T())
	suite.threads.AssertExpectations(suite.T())
	suite.sender.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *SendServiceSuite) request() domain.SendRequest {
	return domain.SendRequest{
		OwnerID:     suite.ownerID,
		To:          "jane.doe@example.com",
		Subject:     "Backend engineer at Stoik",
		Body:        "Hi Jane, would you have time for a call?",
		SenderName:  "Alex Martin",
		JobTitle:    "Backend engineer",
		JobID:       suite.key.JobID,
		CandidateID: suite.key.CandidateID,
	}
}

func (suite *SendServiceSuite) TestSend_NewThread() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, domain.OutgoingMessage{
		OwnerID:    suite.ownerID,
		To:         "jane.doe@example.com",
		Cc:         internalCc,
		Subject:    "Backend engineer at Stoik",
		Body:       "Hi Jane, would you have time for a call?",
		SenderName: "Alex Martin",
	}).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil).Once()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.MatchedBy(func(m *domain.MailSentMessage) bool {
		return m.ThreadID == "T1" && m.MessageID == "M1" && m.JobID == suite.key.JobID
	})).Return(nil)

	result, err := suite.service.Send(ctx, suite.request())

	suite.Require().NoError(err)
	suite.Equal("T1", result.ThreadID)
	suite.Equal("M1", result.MessageID)
}

func (suite *SendServiceSuite) TestSend_ReplyInKnownThread() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(&domain.ThreadEntry{
		OwnerID: suite.ownerID, ThreadID: "T1", MessageID: "M1",
	}, nil)
	suite.sender.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMessage) bool {
		return m.ThreadID == "T1" && m.MessageID == "M1" && m.Subject == ""
	})).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M2"}, nil).Once()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M2").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	result, err := suite.service.Send(ctx, suite.request())

	suite.Require().NoError(err)
	suite.Equal("M2", result.MessageID)
}

func (suite *SendServiceSuite) TestSend_ExplicitThreadWins() {
	ctx := context.Background()
	req := suite.request()
	req.ThreadID = "T-explicit"
	req.MessageID = "M-explicit"
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.sender.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMessage) bool {
		return m.ThreadID == "T-explicit" && m.MessageID == "M-explicit"
	})).Return(&domain.SendResult{ThreadID: "T-explicit", MessageID: "M3"}, nil)
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T-explicit", "M3").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, req)

	suite.NoError(err)
	suite.threads.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_ExplicitMessageOnlyIsAReply() {
	ctx := context.Background()
	req := suite.request()
	req.MessageID = "M-explicit"
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.sender.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMessage) bool {
		return m.ThreadID == "" && m.MessageID == "M-explicit" && m.Subject == ""
	})).Return(&domain.SendResult{ThreadID: "T-anchor", MessageID: "M4"}, nil)
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T-anchor", "M4").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, req)

	suite.NoError(err)
	suite.threads.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_NotConnected() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(domain.ConnectionStatus{}, nil)

	_, err := suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrNotConnected)
	suite.sender.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything)
	suite.threads.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_ExpiredWithoutRefreshToken() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(domain.ConnectionStatus{
		TokenPresent: true,
		Expired:      true,
	}, nil)

	_, err := suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrNotConnected)
	suite.connections.AssertNotCalled(suite.T(), "Refresh", mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_ExpiredIsRefreshedFirst() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(domain.ConnectionStatus{
		TokenPresent:    true,
		Expired:         true,
		NeedsRefresh:    true,
		HasRefreshToken: true,
	}, nil)
	suite.connections.EXPECT().Refresh(ctx, suite.ownerID).Return(true, nil).Once()
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil).Once()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, suite.request())

	suite.NoError(err)
}

func (suite *SendServiceSuite) TestSend_RetriesOnceAfterTokenRejected() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).
		Return(nil, domain.NewError(domain.ErrTokenExpired, "gmail rejected the access token", nil)).Once()
	suite.connections.EXPECT().Refresh(ctx, suite.ownerID).Return(true, nil).Once()
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil).Once()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	result, err := suite.service.Send(ctx, suite.request())

	suite.Require().NoError(err)
	suite.Equal("T1", result.ThreadID)
	suite.sender.AssertNumberOfCalls(suite.T(), "Send", 2)
}

func (suite *SendServiceSuite) TestSend_FailsAfterSingleRetry() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("googleapi: token expired")).Twice()
	suite.connections.EXPECT().Refresh(ctx, suite.ownerID).Return(true, nil).Once()

	_, err := suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrSendFailed)
	suite.sender.AssertNumberOfCalls(suite.T(), "Send", 2)
	suite.threads.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_TokenRejectedAndRefreshFails() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(nil, domain.ErrTokenExpired).Once()
	suite.connections.EXPECT().Refresh(ctx, suite.ownerID).Return(false, nil).Once()

	_, err := suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrNotConnected)
}

func (suite *SendServiceSuite) TestSend_OtherErrorIsNotRetried() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("invalid to header")).Once()

	_, err := suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrSendFailed)
	suite.Contains(domain.UserMessage(err), "invalid to header")
	suite.connections.AssertNotCalled(suite.T(), "Refresh", mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_RecordFailureDoesNotFailSend() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, errors.New("db down"))
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil)
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(errors.New("db down"))
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := suite.service.Send(ctx, suite.request())

	suite.NoError(err)
	suite.Equal("T1", result.ThreadID)
}

func (suite *SendServiceSuite) TestSend_ConnectionVerdictIsCached() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil).Once()
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil).Twice()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, suite.request())
	suite.Require().NoError(err)
	_, err = suite.service.Send(ctx, suite.request())
	suite.Require().NoError(err)

	suite.connections.AssertNumberOfCalls(suite.T(), "CheckConnection", 1)
}

func (suite *SendServiceSuite) TestSend_InvalidateConnectionForcesCheck() {
	ctx := context.Background()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil).Once()
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(domain.ConnectionStatus{}, nil).Once()
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.Anything).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil).Once()
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, suite.request())
	suite.Require().NoError(err)

	suite.service.InvalidateConnection(suite.ownerID)
	_, err = suite.service.Send(ctx, suite.request())

	suite.ErrorIs(err, domain.ErrNotConnected)
}

func (suite *SendServiceSuite) TestSend_Validation() {
	tests := []struct {
		name    string
		mutate  func(*domain.SendRequest)
		message string
	}{
		{name: "missing recipient", mutate: func(r *domain.SendRequest) { r.To = "" }, message: "to is required"},
		{name: "bad recipient", mutate: func(r *domain.SendRequest) { r.To = "jane" }, message: "to is not a valid email address"},
		{name: "missing body", mutate: func(r *domain.SendRequest) { r.Body = "" }, message: "body is required"},
		{name: "blank body", mutate: func(r *domain.SendRequest) { r.Body = "  \n " }, message: "body is required"},
		{name: "missing owner", mutate: func(r *domain.SendRequest) { r.OwnerID = uuid.Nil }, message: "ownerid is required"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.request()
			tt.mutate(&req)

			_, err := suite.service.Send(context.Background(), req)

			suite.ErrorIs(err, domain.ErrValidation)
			suite.Contains(err.Error(), tt.message)
		})
	}
	suite.connections.AssertNotCalled(suite.T(), "CheckConnection", mock.Anything, mock.Anything)
}

func (suite *SendServiceSuite) TestSend_SubjectFromJobTitle() {
	ctx := context.Background()
	req := suite.request()
	req.Subject = ""
	suite.connections.EXPECT().CheckConnection(ctx, suite.ownerID).Return(connected, nil)
	suite.threads.EXPECT().Lookup(ctx, suite.ownerID, suite.key).Return(nil, nil)
	suite.sender.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMessage) bool {
		return m.Subject == "Backend engineer opportunity"
	})).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil)
	suite.threads.EXPECT().Record(ctx, suite.ownerID, suite.key, "T1", "M1").Return(nil)
	suite.notifier.EXPECT().NotifyMailSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.Send(ctx, req)

	suite.NoError(err)
}

func TestComposeExternally(t *testing.T) {
	svc := NewSendService(nil, nil, nil, nil, validator.New(), internalCc, 0)

	link, err := svc.ComposeExternally(domain.SendRequest{
		To:       "jane.doe@example.com",
		Body:     "Hello & welcome",
		JobTitle: "Data engineer",
	})
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mail.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "cm", q.Get("view"))
	assert.Equal(t, "jane.doe@example.com", q.Get("to"))
	assert.Equal(t, internalCc, q.Get("cc"))
	assert.Equal(t, "Data engineer opportunity", q.Get("su"))
	assert.Equal(t, "Hello & welcome", q.Get("body"))
}

func TestComposeExternally_RequiresRecipient(t *testing.T) {
	svc := NewSendService(nil, nil, nil, nil, validator.New(), "", 0)

	_, err := svc.ComposeExternally(domain.SendRequest{Body: "Hello"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIsTokenFailure(t *testing.T) {
	assert.True(t, isTokenFailure(domain.ErrTokenExpired))
	assert.True(t, isTokenFailure(domain.NotConnectedError("gone", nil)))
	assert.True(t, isTokenFailure(errors.New("Gmail says: Token Expired")))
	assert.False(t, isTokenFailure(errors.New("quota exceeded")))
}
