package usecase

import (
	"context"

	"repupulse-api/internal/model"
	"repupulse-api/internal/syncjob"
	"repupulse-api/internal/syncjob/repository"
)

func (uc *usecase) Begin(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error) {
	job, err := uc.repo.Create(ctx, sc, repository.CreateOptions{PlatformName: platformName})
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.Begin.Create: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

func (uc *usecase) Complete(ctx context.Context, sc model.Scope, ip syncjob.CompleteInput) (model.SyncJob, error) {
	job, err := uc.repo.Finish(ctx, sc, repository.FinishOptions{
		ID:             ip.ID,
		Status:         model.SyncStatusSuccess,
		ReviewsFetched: ip.ReviewsFetched,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.Complete.Finish: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

func (uc *usecase) Fail(ctx context.Context, sc model.Scope, ip syncjob.FailInput) (model.SyncJob, error) {
	job, err := uc.repo.Finish(ctx, sc, repository.FinishOptions{
		ID:           ip.ID,
		Status:       model.SyncStatusFailed,
		ErrorMessage: ip.ErrorMessage,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.Fail.Finish: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip syncjob.ListInput) ([]model.SyncJob, error) {
	limit := ip.Limit
	if limit <= 0 {
		if ip.PlatformName != "" {
			limit = syncjob.DefaultPlatformListLimit
		} else {
			limit = syncjob.DefaultListLimit
		}
	}

	jobs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		PlatformName: ip.PlatformName,
		Limit:        limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.List.List: %v", err)
		return nil, err
	}

	return jobs, nil
}

func (uc *usecase) Latest(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error) {
	job, err := uc.repo.Latest(ctx, sc, platformName)
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.Latest.Latest: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

func (uc *usecase) Stats(ctx context.Context, sc model.Scope) (model.SyncStats, error) {
	stats, err := uc.repo.Stats(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.Stats.Stats: %v", err)
		return model.SyncStats{}, err
	}

	return stats, nil
}

func (uc *usecase) SuccessRate(ctx context.Context, sc model.Scope, windowDays int) (float64, error) {
	if windowDays <= 0 {
		windowDays = syncjob.DefaultSuccessRateWindowDays
	}

	rate, err := uc.repo.SuccessRate(ctx, sc, windowDays)
	if err != nil {
		uc.l.Errorf(ctx, "internal.syncjob.usecase.SuccessRate.SuccessRate: %v", err)
		return 0, err
	}

	return rate, nil
}
