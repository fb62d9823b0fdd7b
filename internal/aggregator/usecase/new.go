package usecase

import (
	"context"

	"repupulse-api/config"
	"repupulse-api/internal/aggregator"
	"repupulse-api/internal/aggregator/repository"
	"repupulse-api/internal/credential"
	"repupulse-api/internal/model"
	"repupulse-api/internal/platform"
	"repupulse-api/internal/review"
	"repupulse-api/internal/sentiment"
	"repupulse-api/internal/syncjob"
	pkgLog "repupulse-api/pkg/log"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	creds      credential.Store
	reviewUC   review.UseCase
	syncUC     syncjob.UseCase
	analyzer   sentiment.Analyzer
	cfg        config.SyncConfig
	newAdapter adapterFactory
}

func New(l pkgLog.Logger, repo repository.Repository, creds credential.Store, reviewUC review.UseCase, syncUC syncjob.UseCase, analyzer sentiment.Analyzer, cfg config.SyncConfig) aggregator.UseCase {
	uc := &usecase{
		l:        l,
		repo:     repo,
		creds:    creds,
		reviewUC: reviewUC,
		syncUC:   syncUC,
		analyzer: analyzer,
		cfg:      cfg,
	}
	uc.newAdapter = uc.buildAdapter

	return uc
}

// adapterFactory is swappable in tests.
type adapterFactory func(ctx context.Context, sc model.Scope, platformName string) platform.Adapter
