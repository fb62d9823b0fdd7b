package repository

import (
	"time"

	"repupulse-api/internal/model"
	"repupulse-api/pkg/paginator"
)

type UpsertBatchOptions struct {
	Reviews []model.Review
}

// Filter narrows listing queries. Zero values mean "no constraint".
type Filter struct {
	PlatformName string
	Sentiment    string
	MinRating    float64
	MaxRating    float64
	From         time.Time
	To           time.Time
}

type ListOptions struct {
	Filter Filter
	Limit  int
}

type GetOptions struct {
	Filter   Filter
	PagQuery paginator.PaginateQuery
}
