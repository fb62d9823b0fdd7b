package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repupulse-api/config"
	"repupulse-api/config/postgre"
	aggregatorPostgres "repupulse-api/internal/aggregator/repository/postgre"
	aggregatorUC "repupulse-api/internal/aggregator/usecase"
	credentialPostgres "repupulse-api/internal/credential/repository/postgre"
	credentialUC "repupulse-api/internal/credential/usecase"
	"repupulse-api/internal/httpserver"
	notificationPostgres "repupulse-api/internal/notification/repository/postgre"
	notificationUC "repupulse-api/internal/notification/usecase"
	reviewPostgres "repupulse-api/internal/review/repository/postgre"
	reviewUC "repupulse-api/internal/review/usecase"
	sentimentUC "repupulse-api/internal/sentiment/usecase"
	syncjobPostgres "repupulse-api/internal/syncjob/repository/postgre"
	syncjobUC "repupulse-api/internal/syncjob/usecase"
	"repupulse-api/pkg/encrypter"
	"repupulse-api/pkg/log"
	"repupulse-api/pkg/resend"
	"repupulse-api/pkg/twilio"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	// Register graceful shutdown
	registerGracefulShutdown(logger)

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Credential store (AES-GCM at rest)
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)
	credentialStore := credentialUC.New(logger, credentialPostgres.New(logger, postgresDB), encrypterInstance)

	// Sentiment provider chain
	analyzer := sentimentUC.New(logger, cfg.Sentiment)

	// Review store
	reviews := reviewUC.New(logger, reviewPostgres.New(logger, postgresDB), analyzer)

	// Sync job tracking
	syncjobs := syncjobUC.New(logger, syncjobPostgres.New(logger, postgresDB))

	// Ingestion pipeline
	aggregatorInstance := aggregatorUC.New(
		logger,
		aggregatorPostgres.New(logger, postgresDB),
		credentialStore,
		reviews,
		syncjobs,
		analyzer,
		cfg.Sync,
	)

	// Outbound providers. A missing key just leaves that channel out; its
	// subscriptions then log pending.
	var emailClient resend.IResend
	if cfg.Resend.APIKey != "" {
		emailClient, err = resend.New(logger, cfg.Resend.APIKey, cfg.Resend.From)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Resend: ", err)
			return
		}
	}

	var smsClient twilio.ITwilio
	if cfg.Twilio.AccountSID != "" {
		smsClient, err = twilio.New(logger, cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Twilio: ", err)
			return
		}
	}

	// Notification dispatch
	notifications := notificationUC.New(
		logger,
		notificationPostgres.New(logger, postgresDB),
		reviews,
		notificationUC.NewSenders(logger, emailClient, smsClient),
		cfg.Notifier,
	)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Environment: cfg.HTTPServer.Mode,

		DB: postgresDB,

		AggregatorUC:   aggregatorInstance,
		NotificationUC: notifications,
		SyncJobUC:      syncjobs,
		ReviewUC:       reviews,
		CredentialSt:   credentialStore,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}

func registerGracefulShutdown(logger log.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-ch
		logger.Infof(context.Background(), "Received signal %s, shutting down", sig)
	}()
}
