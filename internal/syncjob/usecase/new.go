package usecase

import (
	"repupulse-api/internal/syncjob"
	"repupulse-api/internal/syncjob/repository"
	pkgLog "repupulse-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) syncjob.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
