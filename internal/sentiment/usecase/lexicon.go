package usecase

import (
	"context"
	"strings"

	"repupulse-api/internal/model"
)

var (
	lexiconPositive = []string{
		"great", "excellent", "amazing", "good", "happy",
		"love", "best", "wonderful", "fantastic", "perfect",
	}
	lexiconNegative = []string{
		"bad", "terrible", "awful", "hate", "worst",
		"poor", "disappointing", "horrible", "useless", "waste",
	}
)

// lexiconProvider is the deterministic terminal element of the chain. It
// counts substring occurrences of a fixed positive and negative word list.
// Matching is substring containment, not tokenized words: "badge" matches
// "bad". Keywords keep that behavior too, so a term that is a substring of
// another matched term shows up alongside it. Downstream consumers depend
// on this output shape; change it only together with them.
type lexiconProvider struct{}

func newLexiconProvider() *lexiconProvider { return &lexiconProvider{} }

func (p *lexiconProvider) Name() string { return "lexicon" }

func (p *lexiconProvider) Classify(_ context.Context, text string) (model.SentimentResult, error) {
	lower := strings.ToLower(text)

	keywords := make([]string, 0)
	positiveCount := 0
	for _, word := range lexiconPositive {
		if strings.Contains(lower, word) {
			positiveCount++
			keywords = append(keywords, word)
		}
	}
	negativeCount := 0
	for _, word := range lexiconNegative {
		if strings.Contains(lower, word) {
			negativeCount++
			keywords = append(keywords, word)
		}
	}

	label := model.SentimentNeutral
	if positiveCount > negativeCount {
		label = model.SentimentPositive
	} else if negativeCount > positiveCount {
		label = model.SentimentNegative
	}

	total := positiveCount + negativeCount
	if total == 0 {
		total = 1
	}

	return model.SentimentResult{
		Sentiment: label,
		Score:     float64(positiveCount) / float64(total),
		Keywords:  keywords,
	}, nil
}
