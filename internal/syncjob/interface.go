package syncjob

import (
	"context"

	"repupulse-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Begin opens a running job for one (company, platform) fetch attempt.
	Begin(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error)
	// Complete marks a running job successful with the persisted review count.
	Complete(ctx context.Context, sc model.Scope, ip CompleteInput) (model.SyncJob, error)
	// Fail marks a running job failed with a human-readable reason.
	Fail(ctx context.Context, sc model.Scope, ip FailInput) (model.SyncJob, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.SyncJob, error)
	Latest(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error)
	Stats(ctx context.Context, sc model.Scope) (model.SyncStats, error)
	SuccessRate(ctx context.Context, sc model.Scope, windowDays int) (float64, error)
}
