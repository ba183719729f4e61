package client

import (
	"context"

	"stoik.com/outreach/internal/core/domain"
)

const (
	MailExchange = "mail"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyMailSent(ctx context.Context, message *domain.MailSentMessage) error {
	return n.publisher.Publish(ctx, MailExchange, domain.RoutingKeyMailSent, message)
}

func (n *AMQPNotifier) NotifyConnectionChanged(ctx context.Context, message *domain.ConnectionChangedMessage) error {
	routingKey := domain.RoutingKeyConnectionRevoked
	if message.Connected {
		routingKey = domain.RoutingKeyConnectionEstablished
	}
	return n.publisher.Publish(ctx, MailExchange, routingKey, message)
}

func (n *AMQPNotifier) PublishSendRequest(ctx context.Context, message *domain.SendRequestedMessage) error {
	return n.publisher.Publish(ctx, MailExchange, domain.RoutingKeySendRequested, message)
}
