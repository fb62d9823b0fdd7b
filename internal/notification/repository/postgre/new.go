package postgres

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"repupulse-api/internal/notification/repository"
	pkgLog "repupulse-api/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	sb    sq.StatementBuilderType
	clock func() time.Time
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		clock: time.Now,
	}
}
