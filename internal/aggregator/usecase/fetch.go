package usecase

import (
	"context"

	"repupulse-api/internal/aggregator"
	"repupulse-api/internal/model"
)

func (uc *usecase) FetchAllPlatforms(ctx context.Context, sc model.Scope, configs []model.PlatformConfig, analyzeSentiment bool) []aggregator.AggregatedResult {
	results := make([]aggregator.AggregatedResult, 0, len(configs))

	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}

		result, ok := uc.fetchOne(ctx, sc, cfg, analyzeSentiment)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	return results
}

// fetchOne isolates one platform. An unknown name yields an empty result; a
// panic inside an adapter reports ok=false so the errored platform is left
// out of the output entirely.
func (uc *usecase) fetchOne(ctx context.Context, sc model.Scope, cfg model.PlatformConfig, analyzeSentiment bool) (result aggregator.AggregatedResult, ok bool) {
	name := model.NormalizePlatformName(cfg.PlatformName)
	result, ok = aggregator.AggregatedResult{PlatformName: name}, true

	defer func() {
		if rec := recover(); rec != nil {
			uc.l.Errorf(ctx, "internal.aggregator.usecase.fetchOne: panic on %s: %v", name, rec)
			result, ok = aggregator.AggregatedResult{PlatformName: name}, false
		}
	}()

	adapter := uc.newAdapter(ctx, sc, name)
	if adapter == nil {
		uc.l.Warnf(ctx, "internal.aggregator.usecase.fetchOne: unknown platform %s", cfg.PlatformName)
		return result, true
	}

	fetched := adapter.FetchReviews(ctx, cfg.BusinessID, uc.cfg.FetchLimit)

	reviews := fetched.Reviews
	for i := range reviews {
		reviews[i].CompanyID = sc.CompanyID
		if reviews[i].PlatformID == nil && cfg.ID != "" {
			id := cfg.ID
			reviews[i].PlatformID = &id
		}

		if analyzeSentiment && reviews[i].Sentiment == nil {
			sr := uc.analyzer.Analyze(ctx, reviews[i].Content)
			reviews[i].Sentiment = &sr
		}
	}

	result.Reviews = reviews
	result.TotalCount = fetched.TotalCount
	result.AverageRating = averageRating(reviews)
	result.Source = string(fetched.Source)

	return result, true
}

func (uc *usecase) ValidateAllConnections(ctx context.Context, sc model.Scope, configs []model.PlatformConfig) map[string]bool {
	statuses := make(map[string]bool, len(configs))

	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}

		name := model.NormalizePlatformName(cfg.PlatformName)
		adapter := uc.newAdapter(ctx, sc, name)
		if adapter == nil {
			statuses[name] = false
			continue
		}

		statuses[name] = adapter.ValidateConnection(ctx)
	}

	return statuses
}

func averageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, rv := range reviews {
		sum += rv.Rating
	}

	return sum / float64(len(reviews))
}
