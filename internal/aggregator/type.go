package aggregator

import "repupulse-api/internal/model"

// AggregatedResult is the per-platform outcome of one fetch pass.
type AggregatedResult struct {
	PlatformName  string         `json:"platform_name"`
	Reviews       []model.Review `json:"reviews"`
	TotalCount    int            `json:"total_count"`
	AverageRating float64        `json:"average_rating"`
	Source        string         `json:"source"`
}

// Summary is the outcome of an ingestion pass over all companies.
type Summary struct {
	Companies      int      `json:"companies"`
	ReviewsFetched int      `json:"reviews_fetched"`
	Failures       []string `json:"failures,omitempty"`
}
