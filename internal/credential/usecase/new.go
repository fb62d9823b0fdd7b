package usecase

import (
	"repupulse-api/internal/credential"
	"repupulse-api/internal/credential/repository"
	"repupulse-api/pkg/encrypter"
	pkgLog "repupulse-api/pkg/log"
)

type store struct {
	l    pkgLog.Logger
	repo repository.Repository
	enc  encrypter.Encrypter
}

func New(l pkgLog.Logger, repo repository.Repository, enc encrypter.Encrypter) credential.Store {
	return &store{
		l:    l,
		repo: repo,
		enc:  enc,
	}
}
