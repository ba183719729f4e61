package amqp

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Client owns the RabbitMQ connection and a single shared channel
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.RWMutex
	url     string
	closed  atomic.Bool
}

// NewClient dials the broker and opens the shared channel
func NewClient(url string) (*Client, error) {
	client := &Client{
		url: url,
	}

	if err := client.connect(); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

// connect establishes the connection and channel and watches for closes
func (c *Client) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.closed.Store(false)

	// Flag the client unhealthy once the broker drops the connection
	go c.watchClose(conn.NotifyClose(make(chan *amqp.Error, 1)))

	log.Info("AMQP client connected successfully")
	return nil
}

// watchClose marks the client closed when the connection goes away
func (c *Client) watchClose(closeErr <-chan *amqp.Error) {
	err, ok := <-closeErr
	c.closed.Store(true)
	if ok && err != nil {
		log.Errorf("AMQP connection closed: %v", err)
	}
}

// Channel returns the shared channel, prefer Publisher/Consumer
func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Healthy reports whether the broker connection is still open
func (c *Client) Healthy() bool {
	return !c.closed.Load()
}

// Close closes the channel and connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	c.closed.Store(true)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info("AMQP client closed successfully")
	return nil
}
