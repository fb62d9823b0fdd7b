package sentiment

import (
	"context"

	"repupulse-api/internal/model"
)

// Analyzer classifies free text. Analyze is total: it always returns a
// well-formed result with a label from the closed sentiment set and a score
// in [0,1], regardless of provider availability.
type Analyzer interface {
	Analyze(ctx context.Context, text string) model.SentimentResult
}

// Provider is one strategy in the fallback chain. A provider may fail (bad
// credentials, transport fault, unparsable response); the chain then moves
// to the next one. The terminal provider must never fail.
type Provider interface {
	Name() string
	Classify(ctx context.Context, text string) (model.SentimentResult, error)
}
