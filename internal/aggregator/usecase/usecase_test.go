package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"repupulse-api/config"
	"repupulse-api/internal/aggregator/repository"
	"repupulse-api/internal/credential"
	"repupulse-api/internal/model"
	"repupulse-api/internal/platform"
	"repupulse-api/internal/review"
	"repupulse-api/internal/syncjob"
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
	configs   map[string][]model.PlatformConfig
	companies []string
	listErr   error
}

func (f *fakeRepo) ActiveByCompany(_ context.Context, sc model.Scope) ([]model.PlatformConfig, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.configs[sc.CompanyID], nil
}

func (f *fakeRepo) Companies(context.Context) ([]string, error) {
	return f.companies, nil
}

type fakeCreds struct{}

func (fakeCreds) Lookup(context.Context, model.Scope, string, string) (string, bool) {
	return "", false
}

func (fakeCreds) Save(context.Context, model.Scope, credential.SaveInput) (model.Credential, error) {
	return model.Credential{}, nil
}

func (fakeCreds) List(context.Context, model.Scope, string) ([]model.Credential, error) {
	return nil, nil
}

func (fakeCreds) Delete(context.Context, model.Scope, string, string) error {
	return nil
}

type fakeReviewUC struct {
	stored   [][]model.Review
	storeErr error
}

func (f *fakeReviewUC) StoreBatch(_ context.Context, _ model.Scope, ip review.StoreBatchInput) (int, error) {
	if f.storeErr != nil {
		return 0, f.storeErr
	}
	f.stored = append(f.stored, ip.Reviews)
	return len(ip.Reviews), nil
}

func (f *fakeReviewUC) Recent(context.Context, model.Scope, time.Time) ([]model.Review, error) {
	return nil, nil
}

func (f *fakeReviewUC) List(context.Context, model.Scope, review.ListInput) ([]model.Review, error) {
	return nil, nil
}

func (f *fakeReviewUC) Get(context.Context, model.Scope, review.GetInput) (review.GetReviewOutput, error) {
	return review.GetReviewOutput{}, nil
}

func (f *fakeReviewUC) Search(context.Context, model.Scope, review.SearchInput) ([]model.Review, error) {
	return nil, nil
}

func (f *fakeReviewUC) Stats(context.Context, model.Scope) (model.ReviewStats, error) {
	return model.ReviewStats{}, nil
}

type finishedJob struct {
	id     string
	status string
	count  int
	reason string
}

type fakeSyncUC struct {
	began    []string
	finished []finishedJob
}

func (f *fakeSyncUC) Begin(_ context.Context, sc model.Scope, platformName string) (model.SyncJob, error) {
	f.began = append(f.began, platformName)
	return model.SyncJob{ID: platformName + "-job", CompanyID: sc.CompanyID, PlatformName: platformName, Status: model.SyncStatusRunning}, nil
}

func (f *fakeSyncUC) Complete(_ context.Context, _ model.Scope, ip syncjob.CompleteInput) (model.SyncJob, error) {
	f.finished = append(f.finished, finishedJob{id: ip.ID, status: model.SyncStatusSuccess, count: ip.ReviewsFetched})
	return model.SyncJob{ID: ip.ID, Status: model.SyncStatusSuccess}, nil
}

func (f *fakeSyncUC) Fail(_ context.Context, _ model.Scope, ip syncjob.FailInput) (model.SyncJob, error) {
	f.finished = append(f.finished, finishedJob{id: ip.ID, status: model.SyncStatusFailed, reason: ip.ErrorMessage})
	return model.SyncJob{ID: ip.ID, Status: model.SyncStatusFailed}, nil
}

func (f *fakeSyncUC) List(context.Context, model.Scope, syncjob.ListInput) ([]model.SyncJob, error) {
	return nil, nil
}

func (f *fakeSyncUC) Latest(context.Context, model.Scope, string) (model.SyncJob, error) {
	return model.SyncJob{}, nil
}

func (f *fakeSyncUC) Stats(context.Context, model.Scope) (model.SyncStats, error) {
	return model.SyncStats{}, nil
}

func (f *fakeSyncUC) SuccessRate(context.Context, model.Scope, int) (float64, error) {
	return 0, nil
}

type fakeAnalyzer struct {
	calls int
}

func (f *fakeAnalyzer) Analyze(context.Context, string) model.SentimentResult {
	f.calls++
	return model.SentimentResult{Sentiment: model.SentimentNeutral, Score: 0.5}
}

type stubAdapter struct {
	name    string
	result  platform.FetchResult
	valid   bool
	panicOn bool
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) FetchReviews(context.Context, string, int) platform.FetchResult {
	if s.panicOn {
		panic("adapter exploded")
	}
	return s.result
}

func (s *stubAdapter) ValidateConnection(context.Context) bool { return s.valid }

func newTestUsecase(repo *fakeRepo, reviewUC *fakeReviewUC, syncUC *fakeSyncUC, adapters map[string]platform.Adapter) (*usecase, *fakeAnalyzer) {
	analyzer := &fakeAnalyzer{}
	uc := New(testLogger(), repo, fakeCreds{}, reviewUC, syncUC, analyzer, config.SyncConfig{FetchLimit: 20}).(*usecase)
	uc.newAdapter = func(_ context.Context, _ model.Scope, platformName string) platform.Adapter {
		return adapters[platformName]
	}
	return uc, analyzer
}

func platformConfig(name string, active bool) model.PlatformConfig {
	return model.PlatformConfig{
		ID:           name + "-cfg",
		CompanyID:    "c1",
		PlatformName: name,
		BusinessID:   "biz-1",
		IsActive:     active,
	}
}

func sampleResult(ratings ...float64) platform.FetchResult {
	reviews := make([]model.Review, 0, len(ratings))
	for i, r := range ratings {
		reviews = append(reviews, model.Review{ReviewID: "r" + string(rune('a'+i)), Rating: r, Content: "some text"})
	}
	return platform.FetchResult{Reviews: reviews, TotalCount: len(reviews), Source: platform.SourceLive}
}

func TestFetchAllPlatforms_SkipsInactive(t *testing.T) {
	uc, _ := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSyncUC{}, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", result: sampleResult(5)},
	})

	configs := []model.PlatformConfig{
		platformConfig("google", true),
		platformConfig("yelp", false),
	}
	results := uc.FetchAllPlatforms(context.Background(), model.Scope{CompanyID: "c1"}, configs, false)

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].PlatformName != "google" {
		t.Errorf("platform = %q, want google", results[0].PlatformName)
	}
}

func TestFetchAllPlatforms_UnknownPlatformYieldsEmptyResult(t *testing.T) {
	uc, _ := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSyncUC{}, nil)

	results := uc.FetchAllPlatforms(context.Background(), model.Scope{CompanyID: "c1"},
		[]model.PlatformConfig{platformConfig("myspace", true)}, false)

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if len(results[0].Reviews) != 0 || results[0].TotalCount != 0 {
		t.Errorf("unknown platform produced data: %+v", results[0])
	}
}

func TestFetchAllPlatforms_PanicIsolatedPerPlatform(t *testing.T) {
	uc, _ := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSyncUC{}, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", panicOn: true},
		"yelp":   &stubAdapter{name: "yelp", result: sampleResult(4, 2)},
	})

	results := uc.FetchAllPlatforms(context.Background(), model.Scope{CompanyID: "c1"},
		[]model.PlatformConfig{platformConfig("google", true), platformConfig("yelp", true)}, false)

	// The panicking platform is left out of the results entirely; only the
	// healthy one comes back.
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	res := results[0]
	if res.PlatformName != "yelp" {
		t.Fatalf("platform = %q, want yelp", res.PlatformName)
	}
	if len(res.Reviews) != 2 {
		t.Errorf("healthy platform lost its reviews: %+v", res)
	}
	if res.AverageRating != 3 {
		t.Errorf("AverageRating = %v, want 3", res.AverageRating)
	}
}

func TestFetchAllPlatforms_SentimentFlag(t *testing.T) {
	tests := []struct {
		name      string
		analyze   bool
		wantCalls int
	}{
		{"classification on", true, 2},
		{"classification off", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, analyzer := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSyncUC{}, map[string]platform.Adapter{
				"google": &stubAdapter{name: "google", result: sampleResult(5, 1)},
			})

			results := uc.FetchAllPlatforms(context.Background(), model.Scope{CompanyID: "c1"},
				[]model.PlatformConfig{platformConfig("google", true)}, tt.analyze)

			if analyzer.calls != tt.wantCalls {
				t.Errorf("analyzer calls = %d, want %d", analyzer.calls, tt.wantCalls)
			}
			for _, rv := range results[0].Reviews {
				if tt.analyze && rv.Sentiment == nil {
					t.Error("review left unclassified with classification on")
				}
				if rv.CompanyID != "c1" {
					t.Errorf("CompanyID = %q, want c1", rv.CompanyID)
				}
			}
		})
	}
}

func TestValidateAllConnections(t *testing.T) {
	uc, _ := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSyncUC{}, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", valid: true},
		"yelp":   &stubAdapter{name: "yelp", valid: false},
	})

	statuses := uc.ValidateAllConnections(context.Background(), model.Scope{CompanyID: "c1"}, []model.PlatformConfig{
		platformConfig("google", true),
		platformConfig("yelp", true),
		platformConfig("myspace", true),
		platformConfig("reddit", false),
	})

	want := map[string]bool{"google": true, "yelp": false, "myspace": false}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for name, ok := range want {
		if statuses[name] != ok {
			t.Errorf("statuses[%s] = %v, want %v", name, statuses[name], ok)
		}
	}
}

func TestIngestCompany_JobLifecycle(t *testing.T) {
	syncUC := &fakeSyncUC{}
	reviewUC := &fakeReviewUC{}
	repo := &fakeRepo{configs: map[string][]model.PlatformConfig{
		"c1": {platformConfig("google", true)},
	}}
	uc, _ := newTestUsecase(repo, reviewUC, syncUC, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", result: sampleResult(5, 3, 1)},
	})

	total, err := uc.IngestCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("IngestCompany() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	if len(syncUC.finished) != 1 {
		t.Fatalf("finished jobs = %d, want 1", len(syncUC.finished))
	}
	job := syncUC.finished[0]
	if job.status != model.SyncStatusSuccess || job.count != 3 {
		t.Errorf("job = %+v, want success with count 3", job)
	}
}

func TestIngestCompany_StoreFailureFailsJob(t *testing.T) {
	syncUC := &fakeSyncUC{}
	reviewUC := &fakeReviewUC{storeErr: errors.New("db unavailable")}
	repo := &fakeRepo{configs: map[string][]model.PlatformConfig{
		"c1": {platformConfig("google", true), platformConfig("yelp", true)},
	}}
	uc, _ := newTestUsecase(repo, reviewUC, syncUC, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", result: sampleResult(5)},
		"yelp":   &stubAdapter{name: "yelp", result: sampleResult(4)},
	})

	total, err := uc.IngestCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("IngestCompany() error = %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}

	// One platform failing must not stop the next one from getting its own job.
	if len(syncUC.finished) != 2 {
		t.Fatalf("finished jobs = %d, want 2", len(syncUC.finished))
	}
	for _, job := range syncUC.finished {
		if job.status != model.SyncStatusFailed {
			t.Errorf("job = %+v, want failed", job)
		}
		if !strings.Contains(job.reason, "db unavailable") {
			t.Errorf("reason = %q, want the store error text", job.reason)
		}
	}
}

func TestIngestCompany_AdapterPanicFailsJob(t *testing.T) {
	syncUC := &fakeSyncUC{}
	repo := &fakeRepo{configs: map[string][]model.PlatformConfig{
		"c1": {platformConfig("google", true)},
	}}
	uc, _ := newTestUsecase(repo, &fakeReviewUC{}, syncUC, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", panicOn: true},
	})

	total, err := uc.IngestCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("IngestCompany() error = %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}

	if len(syncUC.finished) != 1 || syncUC.finished[0].status != model.SyncStatusFailed {
		t.Fatalf("finished = %+v, want one failed job", syncUC.finished)
	}
	if !strings.Contains(syncUC.finished[0].reason, "fetch aborted") {
		t.Errorf("reason = %q, want the aborted-fetch error", syncUC.finished[0].reason)
	}
}

func TestIngestAll_Summary(t *testing.T) {
	syncUC := &fakeSyncUC{}
	repo := &fakeRepo{
		companies: []string{"c1", "c2"},
		configs: map[string][]model.PlatformConfig{
			"c1": {platformConfig("google", true)},
			"c2": {platformConfig("yelp", true)},
		},
	}
	uc, _ := newTestUsecase(repo, &fakeReviewUC{}, syncUC, map[string]platform.Adapter{
		"google": &stubAdapter{name: "google", result: sampleResult(5, 4)},
		"yelp":   &stubAdapter{name: "yelp", result: sampleResult(2)},
	})

	summary, err := uc.IngestAll(context.Background())
	if err != nil {
		t.Fatalf("IngestAll() error = %v", err)
	}
	if summary.Companies != 2 {
		t.Errorf("Companies = %d, want 2", summary.Companies)
	}
	if summary.ReviewsFetched != 3 {
		t.Errorf("ReviewsFetched = %d, want 3", summary.ReviewsFetched)
	}
	if len(summary.Failures) != 0 {
		t.Errorf("Failures = %v, want none", summary.Failures)
	}
}

var (
	_ repository.Repository = (*fakeRepo)(nil)
	_ credential.Store      = fakeCreds{}
	_ review.UseCase        = (*fakeReviewUC)(nil)
	_ syncjob.UseCase       = (*fakeSyncUC)(nil)
	_ platform.Adapter      = (*stubAdapter)(nil)
)
