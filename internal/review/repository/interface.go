package repository

import (
	"context"
	"time"

	"repupulse-api/internal/model"
	"repupulse-api/pkg/paginator"
)

// Repository persists and queries reviews for one company at a time.
type Repository interface {
	// UpsertBatch writes a fetched batch keyed on
	// (company_id, platform_name, review_id) and returns the number of rows
	// the statement touched. Re-running the same batch collapses onto the
	// existing rows instead of duplicating them.
	UpsertBatch(ctx context.Context, sc model.Scope, opts UpsertBatchOptions) (int, error)
	Recent(ctx context.Context, sc model.Scope, since time.Time) ([]model.Review, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Review, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Review, paginator.Paginator, error)
	Search(ctx context.Context, sc model.Scope, keyword string, limit int) ([]model.Review, error)
	Stats(ctx context.Context, sc model.Scope) (model.ReviewStats, error)
}
