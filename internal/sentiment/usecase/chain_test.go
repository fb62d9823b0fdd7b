package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repupulse-api/config"
	"repupulse-api/internal/model"
	"repupulse-api/internal/sentiment"
	pkgLog "repupulse-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type stubProvider struct {
	name   string
	result model.SentimentResult
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Classify(context.Context, string) (model.SentimentResult, error) {
	p.calls++
	return p.result, p.err
}

func TestAnalyze_FallsThroughFailedProviders(t *testing.T) {
	failing := &stubProvider{name: "llm", err: errors.New("quota exceeded")}
	working := &stubProvider{name: "fallback", result: model.SentimentResult{
		Sentiment: model.SentimentPositive,
		Score:     0.9,
		Keywords:  []string{"great"},
	}}

	a := NewWithProviders(testLogger(), failing, working)

	got := a.Analyze(context.Background(), "great stuff")
	if got.Sentiment != model.SentimentPositive {
		t.Errorf("Analyze() sentiment = %v, want positive", got.Sentiment)
	}
	if failing.calls != 1 || working.calls != 1 {
		t.Errorf("provider calls = %d/%d, want 1/1", failing.calls, working.calls)
	}
}

func TestAnalyze_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", result: model.SentimentResult{
		Sentiment: model.SentimentNegative, Score: 0.1, Keywords: []string{},
	}}
	second := &stubProvider{name: "second", result: model.SentimentResult{
		Sentiment: model.SentimentPositive, Score: 0.9, Keywords: []string{},
	}}

	a := NewWithProviders(testLogger(), first, second)

	got := a.Analyze(context.Background(), "anything")
	if got.Sentiment != model.SentimentNegative {
		t.Errorf("Analyze() sentiment = %v, want negative from first provider", got.Sentiment)
	}
	if second.calls != 0 {
		t.Errorf("second provider called %d times, want 0", second.calls)
	}
}

func TestNew_SkipsUnconfiguredProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.SentimentConfig
		wantChain int
	}{
		{
			name:      "no credentials leaves only the lexicon",
			cfg:       config.SentimentConfig{},
			wantChain: 1,
		},
		{
			name:      "openai only",
			cfg:       config.SentimentConfig{OpenAIAPIKey: "sk-test"},
			wantChain: 2,
		},
		{
			name:      "gemini only",
			cfg:       config.SentimentConfig{GeminiAPIKey: "g-test"},
			wantChain: 2,
		},
		{
			name:      "both providers configured",
			cfg:       config.SentimentConfig{OpenAIAPIKey: "sk-test", GeminiAPIKey: "g-test"},
			wantChain: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(testLogger(), tt.cfg)
			impl, ok := a.(*implAnalyzer)
			if !ok {
				t.Fatalf("New() returned %T, want *implAnalyzer", a)
			}
			if len(impl.providers) != tt.wantChain {
				t.Errorf("chain length = %d, want %d", len(impl.providers), tt.wantChain)
			}
			if impl.providers[len(impl.providers)-1].Name() != "lexicon" {
				t.Errorf("terminal provider = %s, want lexicon", impl.providers[len(impl.providers)-1].Name())
			}
		})
	}
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErr   bool
		wantLabel string
		wantScore float64
	}{
		{
			name:      "valid payload",
			raw:       `{"sentiment": "positive", "score": 0.8, "keywords": ["great"]}`,
			wantLabel: model.SentimentPositive,
			wantScore: 0.8,
		},
		{
			name:      "label is normalized",
			raw:       `{"sentiment": " Negative ", "score": 0.2, "keywords": []}`,
			wantLabel: model.SentimentNegative,
			wantScore: 0.2,
		},
		{
			name:      "score clamped above one",
			raw:       `{"sentiment": "positive", "score": 7.5, "keywords": []}`,
			wantLabel: model.SentimentPositive,
			wantScore: 1,
		},
		{
			name:      "score clamped below zero",
			raw:       `{"sentiment": "negative", "score": -3, "keywords": []}`,
			wantLabel: model.SentimentNegative,
			wantScore: 0,
		},
		{
			name:    "unknown label rejected",
			raw:     `{"sentiment": "angry", "score": 0.5, "keywords": []}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON rejected",
			raw:     `{"sentiment": "positive"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePayload(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePayload() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Sentiment != tt.wantLabel {
				t.Errorf("parsePayload() sentiment = %v, want %v", got.Sentiment, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("parsePayload() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Keywords == nil {
				t.Errorf("parsePayload() keywords = nil, want non-nil")
			}
		})
	}
}

func TestParsePayload_NilKeywordsBecomeEmpty(t *testing.T) {
	got, err := parsePayload(`{"sentiment": "neutral", "score": 0.5}`)
	if err != nil {
		t.Fatalf("parsePayload() error = %v", err)
	}
	if got.Keywords == nil || len(got.Keywords) != 0 {
		t.Errorf("parsePayload() keywords = %v, want empty slice", got.Keywords)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			in:     `{"a":1}`,
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "object wrapped in prose",
			in:     "Here is the result:\n```json\n{\"sentiment\":\"positive\"}\n```",
			want:   `{"sentiment":"positive"}`,
			wantOK: true,
		},
		{
			name:   "no object",
			in:     "no json here",
			wantOK: false,
		},
		{
			name:   "closing brace before opening",
			in:     "} {",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("extractJSONObject() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("extractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every remote provider calls through an HTTP client with a deadline so a
// stalled provider cannot hold up an ingestion tick.
func TestNewProviderHTTPClient_AlwaysHasTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout kept", 5 * time.Second, 5 * time.Second},
		{"zero falls back to default", 0, defaultProviderTimeout},
		{"negative falls back to default", -time.Second, defaultProviderTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newProviderHTTPClient(tt.timeout)
			if client.Timeout != tt.want {
				t.Errorf("Timeout = %v, want %v", client.Timeout, tt.want)
			}
		})
	}

	if got := newGeminiProvider("key", "", 0).client.Timeout; got != defaultProviderTimeout {
		t.Errorf("gemini client Timeout = %v, want %v", got, defaultProviderTimeout)
	}
}

var _ sentiment.Provider = (*stubProvider)(nil)
