package repository

import (
	"context"

	"repupulse-api/internal/model"
)

// Repository reads platform connections. Writes go through the admin surface
// that owns the platforms table; the pipeline only ever reads it.
type Repository interface {
	ActiveByCompany(ctx context.Context, sc model.Scope) ([]model.PlatformConfig, error)
	// Companies lists every company owning at least one active connection.
	Companies(ctx context.Context) ([]string, error)
}
