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
	"stoik.com/outreach/internal/core/port"
	"stoik.com/outreach/internal/core/service"
	"stoik.com/outreach/internal/infrastructure/amqp"
	"stoik.com/outreach/internal/server"
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
	if cfg.AuthJWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	ctx := context.Background()

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}
	notifier := client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))

	db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	credentials := storage.NewCredentialsStorage(db)
	threads := storage.NewThreadsStorage(db)

	var sessions port.KeyValueStore
	if cfg.RedisURL != "" {
		redisClient, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		sessions = storage.NewRedisKV(redisClient, "outreach:")
	} else {
		log.Warn("REDIS_URL not set, session state is kept in memory")
		sessions = storage.NewMemoryKV(time.Now)
	}

	provider := client.NewGoogleIdentityProvider(client.GoogleOAuthConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	sender := client.NewGmailSender(credentials, client.GmailConfig{})

	connectionService := service.NewConnectionService(credentials, provider, notifier, cfg.TokenExpiryMargin)
	authorizationService := service.NewAuthorizationService(
		provider,
		credentials,
		sessions,
		service.NewGuardFactory(sessions, cfg.ConnectionAttemptTTL, time.Now),
		notifier,
	)
	sendService := service.NewSendService(
		connectionService,
		service.NewThreadRegistry(threads),
		sender,
		notifier,
		validator.New(),
		cfg.InternalCc,
		cfg.ConnectionCacheTTL,
	)

	// Create HTTP server
	httpServer := server.NewHTTPServer(
		server.Options{
			JWTSecret:         []byte(cfg.AuthJWTSecret),
			SendRatePerMinute: cfg.SendRatePerMinute,
		},
		authorizationService,
		connectionService,
		sendService,
		sendService,
		notifier,
		amqpClient,
	)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Errorf("HTTP server stopped: %v", err)
		}
	}()

	log.Info("Outreach API started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down outreach API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
