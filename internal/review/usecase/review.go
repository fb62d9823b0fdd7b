package usecase

import (
	"context"
	"time"

	"repupulse-api/internal/model"
	"repupulse-api/internal/review"
	"repupulse-api/internal/review/repository"
)

func (uc *usecase) StoreBatch(ctx context.Context, sc model.Scope, ip review.StoreBatchInput) (int, error) {
	reviews := make([]model.Review, len(ip.Reviews))
	copy(reviews, ip.Reviews)

	for i := range reviews {
		if reviews[i].Sentiment != nil {
			continue
		}

		result := uc.analyzer.Analyze(ctx, reviews[i].Content)
		reviews[i].Sentiment = &result
	}

	count, err := uc.repo.UpsertBatch(ctx, sc, repository.UpsertBatchOptions{Reviews: reviews})
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.StoreBatch.UpsertBatch: %v", err)
		return 0, err
	}

	return count, nil
}

func (uc *usecase) Recent(ctx context.Context, sc model.Scope, since time.Time) ([]model.Review, error) {
	reviews, err := uc.repo.Recent(ctx, sc, since)
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.Recent.Recent: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip review.ListInput) ([]model.Review, error) {
	if ip.Filter.Sentiment != "" && !model.ValidSentiment(ip.Filter.Sentiment) {
		uc.l.Warnf(ctx, "internal.review.usecase.List.ValidSentiment: %s", ip.Filter.Sentiment)
		return nil, review.ErrInvalidSentiment
	}

	reviews, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter(ip.Filter),
		Limit:  ip.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.List.List: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip review.GetInput) (review.GetReviewOutput, error) {
	if ip.Filter.Sentiment != "" && !model.ValidSentiment(ip.Filter.Sentiment) {
		uc.l.Warnf(ctx, "internal.review.usecase.Get.ValidSentiment: %s", ip.Filter.Sentiment)
		return review.GetReviewOutput{}, review.ErrInvalidSentiment
	}

	reviews, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:   repository.Filter(ip.Filter),
		PagQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.Get.Get: %v", err)
		return review.GetReviewOutput{}, err
	}

	return review.GetReviewOutput{
		Reviews:   reviews,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Search(ctx context.Context, sc model.Scope, ip review.SearchInput) ([]model.Review, error) {
	if ip.Keyword == "" {
		return nil, review.ErrEmptyKeyword
	}

	reviews, err := uc.repo.Search(ctx, sc, ip.Keyword, ip.Limit)
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.Search.Search: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (uc *usecase) Stats(ctx context.Context, sc model.Scope) (model.ReviewStats, error) {
	stats, err := uc.repo.Stats(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.Stats.Stats: %v", err)
		return model.ReviewStats{}, err
	}

	return stats, nil
}
