package review

import (
	"time"

	"repupulse-api/internal/model"
	"repupulse-api/pkg/paginator"
)

type StoreBatchInput struct {
	Reviews []model.Review
}

type Filter struct {
	PlatformName string
	Sentiment    string
	MinRating    float64
	MaxRating    float64
	From         time.Time
	To           time.Time
}

type ListInput struct {
	Filter Filter
	Limit  int
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetReviewOutput struct {
	Reviews   []model.Review
	Paginator paginator.Paginator
}

type SearchInput struct {
	Keyword string
	Limit   int
}
