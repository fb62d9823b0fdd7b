package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"repupulse-api/internal/model"
)

const defaultProviderTimeout = 20 * time.Second

// newProviderHTTPClient builds the HTTP client every remote provider calls
// through. A provider without a deadline could stall a whole ingestion tick,
// so a zero or negative timeout falls back to the default.
func newProviderHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Analyze walks the provider chain until one returns a usable result. The
// lexicon provider terminates the chain and cannot fail, so the zero-value
// return is unreachable in a correctly assembled chain.
func (a *implAnalyzer) Analyze(ctx context.Context, text string) model.SentimentResult {
	for _, p := range a.providers {
		res, err := p.Classify(ctx, text)
		if err != nil {
			a.l.Warnf(ctx, "internal.sentiment.usecase.Analyze: provider %s failed: %v", p.Name(), err)
			continue
		}
		return res
	}

	a.l.Errorf(ctx, "internal.sentiment.usecase.Analyze: provider chain exhausted without terminal fallback")
	return model.SentimentResult{Sentiment: model.SentimentNeutral, Keywords: []string{}}
}

// sentimentPayload is the JSON body the LLM providers are asked to produce.
type sentimentPayload struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"`
	Keywords  []string `json:"keywords"`
}

// parsePayload validates model output against the closed result contract.
// Unknown labels fail the provider so the chain moves on; scores are clamped
// into [0,1].
func parsePayload(raw string) (model.SentimentResult, error) {
	var payload sentimentPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.SentimentResult{}, fmt.Errorf("parse sentiment JSON: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(payload.Sentiment))
	if !model.ValidSentiment(label) {
		return model.SentimentResult{}, fmt.Errorf("unknown sentiment label %q", payload.Sentiment)
	}

	score := payload.Score
	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	keywords := payload.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return model.SentimentResult{
		Sentiment: label,
		Score:     score,
		Keywords:  keywords,
	}, nil
}

// extractJSONObject returns the first brace-delimited substring of s. Some
// generation-style models wrap their JSON in prose; this recovers the body
// before parsing.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
