package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/core/domain"
	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/logging"
)

const sendJobTimeout = 2 * time.Minute

type sendJob struct {
	delivery *amqp.Delivery
	message  domain.SendRequestedMessage
}

// SendRequestConsumer runs queued send requests on a bounded worker pool.
// Deliveries are acked once the send completes and dead-lettered on failure.
type SendRequestConsumer struct {
	sendService port.SendService
	validate    *validator.Validate
	jobQueue    chan sendJob
	queueMu     sync.RWMutex
	stopped     bool
	wg          sync.WaitGroup
	numWorkers  int
}

func NewSendRequestConsumer(
	sendService port.SendService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *SendRequestConsumer {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &SendRequestConsumer{
		sendService: sendService,
		validate:    validate,
		jobQueue:    make(chan sendJob, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *SendRequestConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d send workers", c.numWorkers)
}

// Stop closes the queue and waits for workers to drain it, or for ctx to end.
func (c *SendRequestConsumer) Stop(ctx context.Context) {
	c.queueMu.Lock()
	c.stopped = true
	close(c.jobQueue)
	c.queueMu.Unlock()

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All send workers stopped after drain")
	case <-ctx.Done():
		log.Warn("Send workers did not drain before shutdown deadline")
	}
}

func (c *SendRequestConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[SendWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[SendWorker %d] Queue closed, stopping", workerID)
				return
			}
			c.process(ctx, job)
		}
	}
}

func (c *SendRequestConsumer) process(ctx context.Context, job sendJob) {
	jobCtx, cancel := context.WithTimeout(ctx, sendJobTimeout)
	defer cancel()

	fields := log.Fields{
		"requestID": job.message.RequestID,
		"ownerID":   job.message.Request.OwnerID,
		"to":        logging.MaskEmail(job.message.Request.To),
	}

	result, err := c.sendService.Send(jobCtx, job.message.Request)
	if err != nil {
		log.WithError(err).WithFields(fields).Error("Queued send failed")
		_ = job.delivery.Nack(false, false)
		return
	}

	log.WithFields(fields).WithField("threadID", result.ThreadID).Info("Queued send delivered")
	_ = job.delivery.Ack(false)
}

func (c *SendRequestConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeySendRequested:
		err = c.handleSendRequested(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
		err = errUnsupportedRoutingKey
	}

	if err != nil {
		// Shutdown interrupted the hand-off, the message itself is fine.
		requeue := errors.Is(err, context.Canceled)
		_ = delivery.Nack(false, requeue)
	}
}

func (c *SendRequestConsumer) handleSendRequested(ctx context.Context, delivery *amqp.Delivery) error {
	var message domain.SendRequestedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal send request: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("send request validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"requestID":   message.RequestID,
		"ownerID":     message.Request.OwnerID,
		"jobID":       message.Request.JobID,
		"candidateID": message.Request.CandidateID,
		"requestedAt": message.RequestedAt,
	}).Info("Received send request")

	c.queueMu.RLock()
	defer c.queueMu.RUnlock()
	if c.stopped {
		return context.Canceled
	}

	// Blocks while the queue is full, which holds back further deliveries.
	select {
	case c.jobQueue <- sendJob{delivery: delivery, message: message}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
