package usecase

import (
	"repupulse-api/config"
	"repupulse-api/internal/sentiment"
	pkgLog "repupulse-api/pkg/log"
)

type implAnalyzer struct {
	l         pkgLog.Logger
	providers []sentiment.Provider
}

var _ sentiment.Analyzer = (*implAnalyzer)(nil)

// New assembles the sentiment provider chain from configuration. Providers
// with missing credentials are left out; the lexicon fallback is always the
// terminal element, so the chain is never empty.
func New(l pkgLog.Logger, cfg config.SentimentConfig) sentiment.Analyzer {
	providers := make([]sentiment.Provider, 0, 3)

	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, newOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout))
	}
	if cfg.GeminiAPIKey != "" {
		providers = append(providers, newGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout))
	}
	providers = append(providers, newLexiconProvider())

	return &implAnalyzer{
		l:         l,
		providers: providers,
	}
}

// NewWithProviders builds an analyzer from an explicit chain. The last
// provider is expected to be total.
func NewWithProviders(l pkgLog.Logger, providers ...sentiment.Provider) sentiment.Analyzer {
	return &implAnalyzer{
		l:         l,
		providers: providers,
	}
}
