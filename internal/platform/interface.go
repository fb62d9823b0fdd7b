package platform

import "context"

// Adapter fetches and normalizes review data from exactly one external
// platform.
//
// FetchReviews always returns a usable result: missing credentials, transport
// faults, and non-2xx responses all degrade to synthetic sample data instead
// of surfacing an error. The FetchResult.Source tag lets callers and logs
// distinguish live data from samples.
//
// ValidateConnection performs a lightweight authenticated call and reports
// false on any credential absence or failure. It never panics.
type Adapter interface {
	Name() string
	FetchReviews(ctx context.Context, sourceID string, limit int) FetchResult
	ValidateConnection(ctx context.Context) bool
}
