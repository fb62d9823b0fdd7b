package notification

import (
	"context"

	"repupulse-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RunCompany evaluates every active alert subscription of one company
	// against the reviews fetched inside the trailing window and records one
	// log row per subscription that fires. It returns the number of
	// subscriptions processed.
	RunCompany(ctx context.Context, sc model.Scope) (int, error)
	// RunAll runs the dispatch pass for every company owning at least one
	// active subscription. A company failure is recorded and does not stop
	// the remaining companies.
	RunAll(ctx context.Context) (RunSummary, error)
	// Test sends a test message through one subscription's channel and logs
	// the outcome.
	Test(ctx context.Context, sc model.Scope, configID string) (model.NotificationLog, error)

	CreateConfig(ctx context.Context, sc model.Scope, ip CreateConfigInput) (model.NotificationConfig, error)
	UpdateConfig(ctx context.Context, sc model.Scope, ip UpdateConfigInput) (model.NotificationConfig, error)
	DeleteConfig(ctx context.Context, sc model.Scope, id string) error
	ListConfigs(ctx context.Context, sc model.Scope) ([]model.NotificationConfig, error)
	ListLogs(ctx context.Context, sc model.Scope, limit int) ([]model.NotificationLog, error)
	Stats(ctx context.Context, sc model.Scope) (model.NotificationStats, error)
}
