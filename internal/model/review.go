package model

import "time"

// Review is the canonical, post-normalization shape of one customer-feedback
// record. Ratings keep the source-native scale: a social post adapter may
// derive a pseudo-rating from engagement counts, so values are not forced
// onto a 1-5 scale.
type Review struct {
	ID           string           `json:"id"`
	CompanyID    string           `json:"company_id"`
	PlatformID   *string          `json:"platform_id,omitempty"`
	PlatformName string           `json:"platform_name"`
	ReviewID     string           `json:"review_id"`
	Author       string           `json:"author"`
	Content      string           `json:"content"`
	Rating       float64          `json:"rating"`
	Sentiment    *SentimentResult `json:"sentiment,omitempty"`
	URL          string           `json:"url"`
	ReviewedAt   time.Time        `json:"reviewed_at"`
	FetchedAt    time.Time        `json:"fetched_at"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Sentiment labels form a closed set.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ValidSentiment reports whether label is one of the closed sentiment set.
func ValidSentiment(label string) bool {
	return label == SentimentPositive || label == SentimentNegative || label == SentimentNeutral
}

// SentimentResult is the classification attached to a review at ingestion
// time. It is computed once and replaced, never mutated in place.
type SentimentResult struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"`
	Keywords  []string `json:"keywords"`
}

// ReviewStats aggregates stored reviews for one company.
type ReviewStats struct {
	TotalReviews       int64            `json:"total_reviews"`
	AverageRating      float64          `json:"average_rating"`
	SentimentBreakdown map[string]int64 `json:"sentiment_breakdown"`
	PlatformBreakdown  map[string]int64 `json:"platform_breakdown"`
	RatingDistribution map[int]int64    `json:"rating_distribution"`
}
