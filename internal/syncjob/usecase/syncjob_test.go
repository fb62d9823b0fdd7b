package usecase

import (
	"context"
	"testing"

	"repupulse-api/internal/model"
	"repupulse-api/internal/syncjob"
	"repupulse-api/internal/syncjob/repository"
	pkgLog "repupulse-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeRepo struct {
	created     []repository.CreateOptions
	finished    []repository.FinishOptions
	listOpts    repository.ListOptions
	rateWindow  int
	finishErr   error
	successRate float64
}

func (f *fakeRepo) Create(_ context.Context, sc model.Scope, opts repository.CreateOptions) (model.SyncJob, error) {
	f.created = append(f.created, opts)
	return model.SyncJob{ID: "job-1", CompanyID: sc.CompanyID, PlatformName: opts.PlatformName, Status: model.SyncStatusRunning}, nil
}

func (f *fakeRepo) Finish(_ context.Context, _ model.Scope, opts repository.FinishOptions) (model.SyncJob, error) {
	if f.finishErr != nil {
		return model.SyncJob{}, f.finishErr
	}
	f.finished = append(f.finished, opts)
	return model.SyncJob{ID: opts.ID, Status: opts.Status, ReviewsFetched: opts.ReviewsFetched}, nil
}

func (f *fakeRepo) List(_ context.Context, _ model.Scope, opts repository.ListOptions) ([]model.SyncJob, error) {
	f.listOpts = opts
	return nil, nil
}

func (f *fakeRepo) Latest(context.Context, model.Scope, string) (model.SyncJob, error) {
	return model.SyncJob{}, syncjob.ErrJobNotFound
}

func (f *fakeRepo) Stats(context.Context, model.Scope) (model.SyncStats, error) {
	return model.SyncStats{}, nil
}

func (f *fakeRepo) SuccessRate(_ context.Context, _ model.Scope, windowDays int) (float64, error) {
	f.rateWindow = windowDays
	return f.successRate, nil
}

func TestBeginCompleteFail_StatusMapping(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(testLogger(), repo)
	sc := model.Scope{CompanyID: "c1"}

	job, err := uc.Begin(context.Background(), sc, "google")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if job.Status != model.SyncStatusRunning {
		t.Errorf("Begin() status = %v, want running", job.Status)
	}

	if _, err := uc.Complete(context.Background(), sc, syncjob.CompleteInput{ID: job.ID, ReviewsFetched: 12}); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got := repo.finished[0]; got.Status != model.SyncStatusSuccess || got.ReviewsFetched != 12 {
		t.Errorf("Complete() finish opts = %+v", got)
	}

	if _, err := uc.Fail(context.Background(), sc, syncjob.FailInput{ID: job.ID, ErrorMessage: "boom"}); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if got := repo.finished[1]; got.Status != model.SyncStatusFailed || got.ErrorMessage != "boom" {
		t.Errorf("Fail() finish opts = %+v", got)
	}
}

func TestList_DefaultLimits(t *testing.T) {
	tests := []struct {
		name      string
		input     syncjob.ListInput
		wantLimit int
	}{
		{"plain history defaults to 100", syncjob.ListInput{}, syncjob.DefaultListLimit},
		{"per-platform defaults to 50", syncjob.ListInput{PlatformName: "google"}, syncjob.DefaultPlatformListLimit},
		{"explicit limit kept", syncjob.ListInput{Limit: 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := New(testLogger(), repo)

			if _, err := uc.List(context.Background(), model.Scope{CompanyID: "c1"}, tt.input); err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if repo.listOpts.Limit != tt.wantLimit {
				t.Errorf("List() limit = %d, want %d", repo.listOpts.Limit, tt.wantLimit)
			}
		})
	}
}

func TestSuccessRate_DefaultWindow(t *testing.T) {
	repo := &fakeRepo{successRate: 75}
	uc := New(testLogger(), repo)

	rate, err := uc.SuccessRate(context.Background(), model.Scope{CompanyID: "c1"}, 0)
	if err != nil {
		t.Fatalf("SuccessRate() error = %v", err)
	}
	if rate != 75 {
		t.Errorf("SuccessRate() = %v, want 75", rate)
	}
	if repo.rateWindow != syncjob.DefaultSuccessRateWindowDays {
		t.Errorf("window = %d, want %d", repo.rateWindow, syncjob.DefaultSuccessRateWindowDays)
	}
}

func TestTerminalGuard_ErrorSurfaces(t *testing.T) {
	repo := &fakeRepo{finishErr: syncjob.ErrJobTerminal}
	uc := New(testLogger(), repo)

	_, err := uc.Complete(context.Background(), model.Scope{CompanyID: "c1"}, syncjob.CompleteInput{ID: "job-1"})
	if err != syncjob.ErrJobTerminal {
		t.Errorf("Complete() error = %v, want ErrJobTerminal", err)
	}
}

var _ repository.Repository = (*fakeRepo)(nil)
