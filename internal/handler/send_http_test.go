package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/mocks"
)

const sendBody = `{"to":"jane.doe@example.com","subject":"Hello","body":"Hi Jane","job_id":"6f1c7a52-3f0e-4f39-9d2c-0d9b8f0b7a11","candidate_id":"b9a4d9e2-8f3a-4c61-a2b7-5c3b2a1d0e99"}`

type SendHTTPHandlerSuite struct {
	suite.Suite
	sendService *mocks.SendService
	publisher   *mocks.SendRequestPublisher
	handler     *SendHTTPHandler
	echo        *echo.Echo
	ownerID     uuid.UUID
}

func TestSendHTTPHandler(t *testing.T) {
	suite.Run(t, new(SendHTTPHandlerSuite))
}

func (suite *SendHTTPHandlerSuite) SetupTest() {
	suite.sendService = &mocks.SendService{}
	suite.publisher = &mocks.SendRequestPublisher{}
	suite.handler = NewSendHTTPHandler(suite.sendService, suite.publisher)
	suite.echo = echo.New()
	suite.ownerID = uuid.New()
}

func (suite *SendHTTPHandlerSuite) TearDownTest() {
	suite.sendService.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *SendHTTPHandlerSuite) context(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	c.Set(OwnerIDKey, suite.ownerID)
	return c, rec
}

func (suite *SendHTTPHandlerSuite) TestSend_OK() {
	suite.sendService.EXPECT().Send(mock.Anything, mock.MatchedBy(func(r domain.SendRequest) bool {
		return r.OwnerID == suite.ownerID &&
			r.To == "jane.doe@example.com" &&
			r.JobID.String() == "6f1c7a52-3f0e-4f39-9d2c-0d9b8f0b7a11"
	})).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1", RFCMessageID: "<x@y>"}, nil)

	c, rec := suite.context("/api/v1/emails/send", sendBody)
	suite.Require().NoError(suite.handler.Send()(c))

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"thread_id":"T1","message_id":"M1","rfc_message_id":"<x@y>"}`, rec.Body.String())
}

func (suite *SendHTTPHandlerSuite) TestSend_OwnerFromTokenWins() {
	body := `{"owner_id":"00000000-0000-0000-0000-000000000001","to":"jane.doe@example.com","body":"Hi"}`
	suite.sendService.EXPECT().Send(mock.Anything, mock.MatchedBy(func(r domain.SendRequest) bool {
		return r.OwnerID == suite.ownerID
	})).Return(&domain.SendResult{ThreadID: "T1", MessageID: "M1"}, nil)

	c, _ := suite.context("/api/v1/emails/send", body)
	suite.Require().NoError(suite.handler.Send()(c))
}

func (suite *SendHTTPHandlerSuite) TestSend_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ValidationError("to is required", nil), http.StatusBadRequest, "validation_error"},
		{"not connected", domain.NotConnectedError("none", nil), http.StatusUnauthorized, "not_connected"},
		{"send failed", domain.SendFailedError("rejected", errors.New("quota")), http.StatusBadGateway, "send_failed"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			sendService := &mocks.SendService{}
			sendService.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, tt.err)
			handler := NewSendHTTPHandler(sendService, suite.publisher)

			c, rec := suite.context("/api/v1/emails/send", sendBody)
			suite.Require().NoError(handler.Send()(c))

			suite.Equal(tt.status, rec.Code)
			var resp ErrorResponse
			suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			suite.Equal(tt.code, resp.Error)
			suite.NotEmpty(resp.Message)
			suite.Nil(resp.Details)
		})
	}
}

func (suite *SendHTTPHandlerSuite) TestSend_BadPayload() {
	c, rec := suite.context("/api/v1/emails/send", `{"to":`)
	suite.Require().NoError(suite.handler.Send()(c))

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *SendHTTPHandlerSuite) TestSendAsync_Queued() {
	suite.publisher.EXPECT().PublishSendRequest(mock.Anything, mock.MatchedBy(func(m *domain.SendRequestedMessage) bool {
		return m.RequestID != uuid.Nil && m.Request.OwnerID == suite.ownerID && !m.RequestedAt.IsZero()
	})).Return(nil)

	c, rec := suite.context("/api/v1/emails/send/async", sendBody)
	suite.Require().NoError(suite.handler.SendAsync()(c))

	suite.Equal(http.StatusAccepted, rec.Code)
	var resp SendAcceptedResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.NotEqual(uuid.Nil, resp.RequestID)
}

func (suite *SendHTTPHandlerSuite) TestSendAsync_BrokerDown() {
	suite.publisher.EXPECT().PublishSendRequest(mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	c, rec := suite.context("/api/v1/emails/send/async", sendBody)
	suite.Require().NoError(suite.handler.SendAsync()(c))

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (suite *SendHTTPHandlerSuite) TestComposeLink() {
	suite.sendService.EXPECT().ComposeExternally(mock.Anything).
		Return("https://mail.google.com/mail/?fs=1&to=jane.doe%40example.com&view=cm", nil)

	c, rec := suite.context("/api/v1/emails/compose-link", sendBody)
	suite.Require().NoError(suite.handler.ComposeLink()(c))

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"url":"https://mail.google.com/mail/?fs=1&to=jane.doe%40example.com&view=cm"}`, rec.Body.String())
}
