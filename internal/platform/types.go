package platform

import (
	"net/http"
	"time"

	"repupulse-api/internal/model"
)

// DefaultFetchLimit is used when a caller passes a non-positive limit.
const DefaultFetchLimit = 20

// Source tags whether a fetch result came from the live platform API or
// from the synthetic sample generator.
type Source string

const (
	SourceLive   Source = "live"
	SourceSample Source = "sample"
)

// FetchResult is the normalized response of one adapter fetch.
type FetchResult struct {
	Reviews       []model.Review
	TotalCount    int
	HasMore       bool
	NextPageToken string
	Source        Source
}

const defaultHTTPTimeout = 30 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultFetchLimit
	}
	return limit
}
