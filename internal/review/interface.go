package review

import (
	"context"
	"time"

	"repupulse-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// StoreBatch classifies any unclassified review in the batch and upserts
	// the whole batch, returning how many rows were written.
	StoreBatch(ctx context.Context, sc model.Scope, ip StoreBatchInput) (int, error)
	Recent(ctx context.Context, sc model.Scope, since time.Time) ([]model.Review, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Review, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetReviewOutput, error)
	Search(ctx context.Context, sc model.Scope, ip SearchInput) ([]model.Review, error)
	Stats(ctx context.Context, sc model.Scope) (model.ReviewStats, error)
}
