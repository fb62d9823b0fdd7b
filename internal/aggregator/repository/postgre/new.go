package postgres

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"repupulse-api/internal/aggregator/repository"
	pkgLog "repupulse-api/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}
