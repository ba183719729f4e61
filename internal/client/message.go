package client

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"stoik.com/outreach/internal/core/domain"
)

// threadAnchor holds the headers of the message a reply is anchored to.
type threadAnchor struct {
	ThreadID   string
	MessageID  string   // without angle brackets
	References []string // without angle brackets
	Subject    string
}

// buildRawMessage renders an RFC 5322 message and returns it with its
// Message-ID header value.
func buildRawMessage(msg domain.OutgoingMessage, from string, anchor *threadAnchor, now time.Time) ([]byte, string, error) {
	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	if msg.Cc != "" && !strings.EqualFold(msg.Cc, msg.To) {
		h.SetAddressList("Cc", []*mail.Address{{Address: msg.Cc}})
	}
	if from != "" {
		h.SetAddressList("From", []*mail.Address{{Name: msg.SenderName, Address: from}})
	}

	subject := msg.Subject
	if anchor != nil && anchor.MessageID != "" {
		h.SetMsgIDList("In-Reply-To", []string{anchor.MessageID})
		h.SetMsgIDList("References", appendReference(anchor.References, anchor.MessageID))
		if subject == "" {
			subject = replySubject(anchor.Subject)
		}
	}
	if subject != "" {
		h.SetSubject(subject)
	}

	if err := h.GenerateMessageID(); err != nil {
		return nil, "", fmt.Errorf("failed to generate message id: %w", err)
	}
	messageID, err := h.MessageID()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read message id: %w", err)
	}

	contentType := "text/plain"
	if looksLikeHTML(msg.Body) {
		contentType = "text/html"
	}
	h.SetContentType(contentType, map[string]string{"charset": "utf-8"})

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create message writer: %w", err)
	}
	if _, err := io.WriteString(w, msg.Body); err != nil {
		return nil, "", fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish message: %w", err)
	}

	return buf.Bytes(), "<" + messageID + ">", nil
}

func appendReference(refs []string, id string) []string {
	out := make([]string, 0, len(refs)+1)
	for _, ref := range refs {
		if ref != id {
			out = append(out, ref)
		}
	}
	return append(out, id)
}

func replySubject(original string) string {
	if original == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(original), "re:") {
		return original
	}
	return "Re: " + original
}

func looksLikeHTML(body string) bool {
	lower := strings.ToLower(body)
	for _, tag := range []string{"<html", "<p>", "<p ", "<br", "<div", "<table"} {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}

// parseMsgIDs splits a Message-ID, In-Reply-To or References header value
// into ids without angle brackets.
func parseMsgIDs(value string) []string {
	var ids []string
	for _, field := range strings.Fields(value) {
		id := strings.Trim(field, "<>,")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
