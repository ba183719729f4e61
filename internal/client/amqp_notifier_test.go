package client

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"stoik.com/outreach/internal/core/domain"
)

type publishedMessage struct {
	exchange   string
	routingKey string
	message    any
}

type recordingPublisher struct {
	published []publishedMessage
}

func (p *recordingPublisher) Publish(_ context.Context, exchange, routingKey string, message any) error {
	p.published = append(p.published, publishedMessage{exchange, routingKey, message})
	return nil
}

func TestAMQPNotifier_RoutingKeys(t *testing.T) {
	ctx := context.Background()
	publisher := &recordingPublisher{}
	notifier := NewAMQPNotifier(publisher)
	ownerID := uuid.New()

	assert.NoError(t, notifier.NotifyMailSent(ctx, &domain.MailSentMessage{OwnerID: ownerID, ThreadID: "T1", MessageID: "M1", SentAt: time.Now()}))
	assert.NoError(t, notifier.NotifyConnectionChanged(ctx, &domain.ConnectionChangedMessage{OwnerID: ownerID, Connected: true}))
	assert.NoError(t, notifier.NotifyConnectionChanged(ctx, &domain.ConnectionChangedMessage{OwnerID: ownerID, Connected: false}))
	assert.NoError(t, notifier.PublishSendRequest(ctx, &domain.SendRequestedMessage{RequestID: uuid.New()}))

	keys := make([]string, 0, len(publisher.published))
	for _, p := range publisher.published {
		assert.Equal(t, MailExchange, p.exchange)
		keys = append(keys, p.routingKey)
	}
	assert.Equal(t, []string{
		domain.RoutingKeyMailSent,
		domain.RoutingKeyConnectionEstablished,
		domain.RoutingKeyConnectionRevoked,
		domain.RoutingKeySendRequested,
	}, keys)
}
