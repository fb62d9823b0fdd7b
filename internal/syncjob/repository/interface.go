package repository

import (
	"context"

	"repupulse-api/internal/model"
)

// Repository records fetch attempts. Jobs are created in the running state
// and finished exactly once; a job that already reached a terminal state
// rejects further updates.
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.SyncJob, error)
	Finish(ctx context.Context, sc model.Scope, opts FinishOptions) (model.SyncJob, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.SyncJob, error)
	Latest(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error)
	Stats(ctx context.Context, sc model.Scope) (model.SyncStats, error)
	SuccessRate(ctx context.Context, sc model.Scope, windowDays int) (float64, error)
}
