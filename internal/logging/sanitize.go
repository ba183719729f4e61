package logging

import "strings"

// Helpers for keeping addresses and secrets out of logs.

func MaskEmail(s string) string {
	s = strings.TrimSpace(s)
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return s
	}
	return maskPart(s[:at]) + "@" + s[at+1:]
}

// MaskToken keeps a short prefix so two tokens can be told apart in logs.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "[redacted]"
	}
	return token[:4] + "…[redacted]"
}

func maskPart(part string) string {
	if len(part) <= 1 {
		return "*"
	}
	return part[:1] + strings.Repeat("*", max(0, len(part)-2)) + part[len(part)-1:]
}
