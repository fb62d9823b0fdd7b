package usecase

import (
	"time"

	"repupulse-api/config"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/notification/repository"
	"repupulse-api/internal/review"
	pkgLog "repupulse-api/pkg/log"
)

type usecase struct {
	l                 pkgLog.Logger
	repo              repository.Repository
	reviewUC          review.UseCase
	senders           map[string]Sender
	window            time.Duration
	negativeThreshold float64
	clock             func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, reviewUC review.UseCase, senders map[string]Sender, cfg config.NotifierConfig) notification.UseCase {
	window := cfg.Window
	if window <= 0 {
		window = notification.DefaultWindow
	}

	threshold := cfg.NegativeThreshold
	if threshold <= 0 {
		threshold = notification.DefaultNegativeThreshold
	}

	return &usecase{
		l:                 l,
		repo:              repo,
		reviewUC:          reviewUC,
		senders:           senders,
		window:            window,
		negativeThreshold: threshold,
		clock:             time.Now,
	}
}
