package usecase

import (
	"repupulse-api/internal/review"
	"repupulse-api/internal/review/repository"
	"repupulse-api/internal/sentiment"
	pkgLog "repupulse-api/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	analyzer sentiment.Analyzer
}

func New(l pkgLog.Logger, repo repository.Repository, analyzer sentiment.Analyzer) review.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		analyzer: analyzer,
	}
}
