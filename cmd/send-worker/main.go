package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"stoik.com/outreach/internal/client"
	"stoik.com/outreach/internal/config"
	"stoik.com/outreach/internal/core/service"
	"stoik.com/outreach/internal/handler"
	"stoik.com/outreach/internal/infrastructure/amqp"
	"stoik.com/outreach/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.Level())

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	notifier := client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))

	db, err := storage.NewPostgresDB(context.Background(), cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	credentials := storage.NewCredentialsStorage(db)

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	provider := client.NewGoogleIdentityProvider(client.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	validate := validator.New()
	sendService := service.NewSendService(
		service.NewConnectionService(credentials, provider, notifier, cfg.TokenExpiryMargin),
		service.NewThreadRegistry(storage.NewThreadsStorage(db)),
		client.NewGmailSender(credentials, client.GmailConfig{}),
		notifier,
		validate,
		cfg.InternalCc,
		cfg.ConnectionCacheTTL,
	)

	messageHandler := handler.NewSendRequestConsumer(sendService, validate, cfg.SendWorkers, cfg.SendQueueSize)

	// Workers outlive the consumer so queued sends can drain on shutdown.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	messageHandler.Start(workerCtx)

	consumer := amqp.NewConsumer(amqpClient, messageHandler, cfg.SendWorkers)
	if err := consumer.Consume(consumeCtx, amqp.SendQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Send worker started successfully")
	log.Infof("Consuming messages from queue: %s", amqp.SendQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down send worker...")

	consumeCancel()

	// Unacked deliveries still waiting in the pool are redelivered by the broker.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer shutdownCancel()
	messageHandler.Stop(shutdownCtx)
	workerCancel()
}
