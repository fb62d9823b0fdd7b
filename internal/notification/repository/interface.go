package repository

import (
	"context"

	"repupulse-api/internal/model"
)

// Repository persists alert subscriptions and the append-only dispatch log.
type Repository interface {
	CreateConfig(ctx context.Context, sc model.Scope, opts CreateConfigOptions) (model.NotificationConfig, error)
	UpdateConfig(ctx context.Context, sc model.Scope, opts UpdateConfigOptions) (model.NotificationConfig, error)
	DeleteConfig(ctx context.Context, sc model.Scope, id string) error
	ListConfigs(ctx context.Context, sc model.Scope, activeOnly bool) ([]model.NotificationConfig, error)

	InsertLog(ctx context.Context, sc model.Scope, opts InsertLogOptions) (model.NotificationLog, error)
	ListLogs(ctx context.Context, sc model.Scope, limit int) ([]model.NotificationLog, error)
	LogStats(ctx context.Context, sc model.Scope) (model.NotificationStats, error)

	// Companies lists every company that owns at least one active config.
	Companies(ctx context.Context) ([]string, error)
}
