package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOAuthCredential_ExpiredAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	credential := OAuthCredential{ExpiresAt: now.Add(90 * time.Second)}

	assert.False(t, credential.ExpiredAt(now, time.Minute))
	assert.True(t, credential.ExpiredAt(now.Add(30*time.Second), time.Minute))
	assert.True(t, credential.ExpiredAt(now.Add(2*time.Minute), 0))
}

func TestContextKey_Complete(t *testing.T) {
	assert.True(t, ContextKey{JobID: uuid.New(), CandidateID: uuid.New()}.Complete())
	assert.False(t, ContextKey{JobID: uuid.New()}.Complete())
	assert.False(t, ContextKey{}.Complete())
}
