package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"repupulse-api/internal/aggregator"
	"repupulse-api/internal/credential"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/review"
	"repupulse-api/internal/syncjob"
	"repupulse-api/pkg/log"
)

// HTTPServer exposes the scheduler entry points and the admin surface.
// New() only wires dependencies and validates them; Run() (in
// httpserver.go) starts serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	db *sql.DB

	aggregatorUC   aggregator.UseCase
	notificationUC notification.UseCase
	syncjobUC      syncjob.UseCase
	reviewUC       review.UseCase
	credentialSt   credential.Store
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Environment string

	DB *sql.DB

	AggregatorUC   aggregator.UseCase
	NotificationUC notification.UseCase
	SyncJobUC      syncjob.UseCase
	ReviewUC       review.UseCase
	CredentialSt   credential.Store
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: this does NOT start any goroutines. Use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		db: cfg.DB,

		aggregatorUC:   cfg.AggregatorUC,
		notificationUC: cfg.NotificationUC,
		syncjobUC:      cfg.SyncJobUC,
		reviewUC:       cfg.ReviewUC,
		credentialSt:   cfg.CredentialSt,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.db == nil {
		return errors.New("database handle is required")
	}
	if s.aggregatorUC == nil {
		return errors.New("aggregator usecase is required")
	}
	if s.notificationUC == nil {
		return errors.New("notification usecase is required")
	}
	if s.syncjobUC == nil {
		return errors.New("syncjob usecase is required")
	}
	if s.reviewUC == nil {
		return errors.New("review usecase is required")
	}
	if s.credentialSt == nil {
		return errors.New("credential store is required")
	}

	return nil
}
