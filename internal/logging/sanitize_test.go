package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane.doe@example.com", "j******e@example.com"},
		{"ab@x.com", "ab@x.com"},
		{"a@x.com", "*@x.com"},
		{"not-an-email", "not-an-email"},
		{"@x.com", "@x.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), tt.in)
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "[redacted]", MaskToken("short"))
	assert.Equal(t, "ya29…[redacted]", MaskToken("ya29.a0AfH6SMBx"))
}
