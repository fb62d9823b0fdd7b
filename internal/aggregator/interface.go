package aggregator

import (
	"context"

	"repupulse-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// FetchAllPlatforms fetches every active platform config in sequence and
	// returns one result per config, in input order. A broken platform yields
	// an empty result for that platform; it never aborts the rest.
	FetchAllPlatforms(ctx context.Context, sc model.Scope, configs []model.PlatformConfig, analyzeSentiment bool) []AggregatedResult
	// ValidateAllConnections probes each active config's live credentials.
	ValidateAllConnections(ctx context.Context, sc model.Scope, configs []model.PlatformConfig) map[string]bool
	// IngestCompany runs the full pipeline for one company: per platform,
	// open a sync job, fetch, classify, persist, close the job. Returns the
	// total number of reviews persisted.
	IngestCompany(ctx context.Context, sc model.Scope) (int, error)
	// IngestAll ingests every company owning at least one active platform
	// config, sequentially.
	IngestAll(ctx context.Context) (Summary, error)
}
