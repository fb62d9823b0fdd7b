package usecase

import (
	"context"
	"fmt"

	"github.com/friendsofgo/errors"

	"repupulse-api/internal/aggregator"
	"repupulse-api/internal/model"
	"repupulse-api/internal/review"
	"repupulse-api/internal/syncjob"
)

func (uc *usecase) IngestCompany(ctx context.Context, sc model.Scope) (int, error) {
	configs, err := uc.repo.ActiveByCompany(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.aggregator.usecase.IngestCompany.ActiveByCompany: %v", err)
		return 0, err
	}

	total := 0
	for _, cfg := range configs {
		total += uc.ingestPlatform(ctx, sc, cfg)
	}

	return total, nil
}

// ingestPlatform runs fetch-classify-persist for one platform under a sync
// job. Every exit path closes the job; a failure on one platform never
// reaches the others.
func (uc *usecase) ingestPlatform(ctx context.Context, sc model.Scope, cfg model.PlatformConfig) int {
	name := model.NormalizePlatformName(cfg.PlatformName)

	job, err := uc.syncUC.Begin(ctx, sc, name)
	if err != nil {
		uc.l.Errorf(ctx, "internal.aggregator.usecase.ingestPlatform.Begin: %s: %v", name, err)
		return 0
	}

	count, err := uc.runJob(ctx, sc, cfg)
	if err != nil {
		uc.l.Errorf(ctx, "internal.aggregator.usecase.ingestPlatform.runJob: %s: %v", name, err)
		if _, failErr := uc.syncUC.Fail(ctx, sc, syncjob.FailInput{
			ID:           job.ID,
			ErrorMessage: err.Error(),
		}); failErr != nil {
			uc.l.Errorf(ctx, "internal.aggregator.usecase.ingestPlatform.Fail: %s: %v", name, failErr)
		}
		return 0
	}

	if _, err := uc.syncUC.Complete(ctx, sc, syncjob.CompleteInput{
		ID:             job.ID,
		ReviewsFetched: count,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.aggregator.usecase.ingestPlatform.Complete: %s: %v", name, err)
	}

	return count
}

func (uc *usecase) runJob(ctx context.Context, sc model.Scope, cfg model.PlatformConfig) (count int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			count, err = 0, fmt.Errorf("panic: %v", rec)
		}
	}()

	result, ok := uc.fetchOne(ctx, sc, cfg, false)
	if !ok {
		return 0, fmt.Errorf("fetch aborted for %s", model.NormalizePlatformName(cfg.PlatformName))
	}
	if len(result.Reviews) == 0 {
		return 0, nil
	}

	count, err = uc.reviewUC.StoreBatch(ctx, sc, review.StoreBatchInput{Reviews: result.Reviews})
	return count, errors.Wrap(err, "store batch")
}

func (uc *usecase) IngestAll(ctx context.Context) (aggregator.Summary, error) {
	companies, err := uc.repo.Companies(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.aggregator.usecase.IngestAll.Companies: %v", err)
		return aggregator.Summary{}, err
	}

	summary := aggregator.Summary{Companies: len(companies)}
	for _, companyID := range companies {
		count, err := uc.IngestCompany(ctx, model.Scope{CompanyID: companyID})
		if err != nil {
			uc.l.Errorf(ctx, "internal.aggregator.usecase.IngestAll.IngestCompany: company %s: %v", companyID, err)
			summary.Failures = append(summary.Failures, companyID)
			continue
		}
		summary.ReviewsFetched += count
	}

	return summary, nil
}
