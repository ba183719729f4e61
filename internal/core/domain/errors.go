package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrNotConnected        = errors.New("mail account not connected")
	ErrAlreadyInProgress   = errors.New("connection already in progress")
	ErrRedirectURIMismatch = errors.New("redirect uri mismatch")
	ErrExchangeFailed      = errors.New("authorization code exchange failed")
	ErrMissingParameters   = errors.New("missing callback parameters")
	ErrSendFailed          = errors.New("send failed")

	// Provider signal that the access token was rejected. Triggers the
	// one-shot refresh and retry in the send pipeline.
	ErrTokenExpired = errors.New("token expired")

	ErrCredentialNotFound = errors.New("credential not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
)

// Error is a typed failure of the mail connection or send flows.
// Kind is one of the sentinel errors above and is matched by errors.Is.
type Error struct {
	Kind    error
	Message string         // Human readable
	Err     error          // Underlying cause
	Context map[string]any // Operator diagnostics
}

func NewError(kind error, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Context: make(map[string]any),
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// WithContext adds a diagnostic value to the error
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

func ValidationError(message string, err error) *Error {
	return NewError(ErrValidation, message, err)
}

func NotConnectedError(message string, err error) *Error {
	return NewError(ErrNotConnected, message, err)
}

func SendFailedError(message string, err error) *Error {
	return NewError(ErrSendFailed, message, err)
}

func ExchangeFailedError(message string, err error) *Error {
	return NewError(ErrExchangeFailed, message, err)
}

// UserMessage renders err for the person who triggered the operation. Each
// case asks for a different remediation: reconnect, wait, retry or contact an admin.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		var e *Error
		if errors.As(err, &e) && e.Message != "" {
			return "Please check the email details: " + e.Message + "."
		}
		return "Please check the email details and try again."
	case errors.Is(err, ErrNotConnected), errors.Is(err, ErrTokenExpired):
		return "Your Gmail account is not connected. Please connect or reconnect Gmail in your settings."
	case errors.Is(err, ErrAlreadyInProgress):
		return "A Gmail connection is already in progress. Finish it in the other window or wait a few minutes and try again."
	case errors.Is(err, ErrRedirectURIMismatch):
		return "Gmail connection is misconfigured (redirect URI mismatch). Please contact an administrator."
	case errors.Is(err, ErrMissingParameters):
		return "The Gmail connection response was incomplete. Please try connecting again."
	case errors.Is(err, ErrExchangeFailed):
		return "Gmail did not accept the connection request. Please try connecting again."
	case errors.Is(err, ErrSendFailed):
		var e *Error
		if errors.As(err, &e) && e.Err != nil {
			return "The email could not be sent: " + e.Err.Error() + ". Please try again."
		}
		return "The email could not be sent. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
