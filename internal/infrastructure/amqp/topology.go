package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	MailExchange           = "mail"
	MailDeadLetterExchange = "mail.dlx"

	SendQueue       = "mail.send"
	SendDeadQueue   = "mail.send.dead"
	MailEventsQueue = "mail.events"

	RoutingKeySendRequested = "mail.send.requested"
	RoutingKeyMailSent      = "mail.sent"
	RoutingKeyConnection    = "mail.connection.*"
)

type queueSpec struct {
	name     string
	args     amqp.Table
	exchange string
	keys     []string
}

// Queues are declared in order: the dead-letter queue exists before the
// send queue that routes rejected requests to it.
var mailQueues = []queueSpec{
	{
		name:     SendDeadQueue,
		exchange: MailDeadLetterExchange,
		keys:     []string{RoutingKeySendRequested},
	},
	{
		name:     SendQueue,
		args:     amqp.Table{"x-dead-letter-exchange": MailDeadLetterExchange},
		exchange: MailExchange,
		keys:     []string{RoutingKeySendRequested},
	},
	{
		name:     MailEventsQueue,
		exchange: MailExchange,
		keys:     []string{RoutingKeyMailSent, RoutingKeyConnection},
	},
}

// TopologyManager declares the mail exchanges and queues
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup is idempotent, both services call it on startup
func (t *TopologyManager) Setup() error {
	ch := t.client.Channel()

	for _, exchange := range []string{MailExchange, MailDeadLetterExchange} {
		if err := t.declareExchange(ch, exchange); err != nil {
			return err
		}
	}

	for _, spec := range mailQueues {
		if err := t.declareQueue(ch, spec.name, spec.args); err != nil {
			return err
		}
		for _, key := range spec.keys {
			if err := t.bindQueue(ch, spec.name, spec.exchange, key); err != nil {
				return err
			}
		}
	}

	log.WithField("queues", len(mailQueues)).Info("AMQP mail topology declared")
	return nil
}

// declareExchange declares a topic exchange
func (t *TopologyManager) declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

// declareQueue declares a durable queue
func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string, args amqp.Table) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
