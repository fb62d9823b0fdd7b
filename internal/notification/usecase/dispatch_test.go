package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repupulse-api/config"
	"repupulse-api/internal/model"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/notification/repository"
	"repupulse-api/internal/review"
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
	configs   []model.NotificationConfig
	logs      []repository.InsertLogOptions
	companies []string
}

func (f *fakeRepo) CreateConfig(_ context.Context, sc model.Scope, opts repository.CreateConfigOptions) (model.NotificationConfig, error) {
	cfg := model.NotificationConfig{
		ID:               "cfg-new",
		CompanyID:        sc.CompanyID,
		NotificationType: opts.NotificationType,
		Recipient:        opts.Recipient,
		AlertType:        opts.AlertType,
		IsActive:         opts.IsActive,
	}
	f.configs = append(f.configs, cfg)
	return cfg, nil
}

func (f *fakeRepo) UpdateConfig(context.Context, model.Scope, repository.UpdateConfigOptions) (model.NotificationConfig, error) {
	return model.NotificationConfig{}, notification.ErrConfigNotFound
}

func (f *fakeRepo) DeleteConfig(context.Context, model.Scope, string) error {
	return nil
}

func (f *fakeRepo) ListConfigs(_ context.Context, _ model.Scope, activeOnly bool) ([]model.NotificationConfig, error) {
	if !activeOnly {
		return f.configs, nil
	}

	var active []model.NotificationConfig
	for _, cfg := range f.configs {
		if cfg.IsActive {
			active = append(active, cfg)
		}
	}
	return active, nil
}

func (f *fakeRepo) InsertLog(_ context.Context, sc model.Scope, opts repository.InsertLogOptions) (model.NotificationLog, error) {
	f.logs = append(f.logs, opts)
	return model.NotificationLog{ID: "log-1", CompanyID: sc.CompanyID, Status: opts.Status, Message: opts.Message}, nil
}

func (f *fakeRepo) ListLogs(context.Context, model.Scope, int) ([]model.NotificationLog, error) {
	return nil, nil
}

func (f *fakeRepo) LogStats(context.Context, model.Scope) (model.NotificationStats, error) {
	return model.NotificationStats{}, nil
}

func (f *fakeRepo) Companies(context.Context) ([]string, error) {
	return f.companies, nil
}

type fakeReviewUC struct {
	recent []model.Review
}

func (f *fakeReviewUC) StoreBatch(context.Context, model.Scope, review.StoreBatchInput) (int, error) {
	return 0, nil
}

func (f *fakeReviewUC) Recent(context.Context, model.Scope, time.Time) ([]model.Review, error) {
	return f.recent, nil
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

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(_ context.Context, recipient, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, recipient+": "+message)
	return nil
}

func newTestUsecase(repo *fakeRepo, reviews *fakeReviewUC, sender Sender) *usecase {
	senders := map[string]Sender{}
	if sender != nil {
		senders[model.NotificationTypeEmail] = sender
	}

	uc := New(testLogger(), repo, reviews, senders, config.NotifierConfig{
		Window:            30 * time.Minute,
		NegativeThreshold: 3,
	}).(*usecase)
	return uc
}

func emailConfig(alertType string) model.NotificationConfig {
	return model.NotificationConfig{
		ID:               "cfg-1",
		NotificationType: model.NotificationTypeEmail,
		Recipient:        "owner@example.com",
		AlertType:        alertType,
		IsActive:         true,
	}
}

func TestRunCompany_QuietWindowWritesNoLogs(t *testing.T) {
	repo := &fakeRepo{configs: []model.NotificationConfig{emailConfig(model.AlertTypeAll)}}
	uc := newTestUsecase(repo, &fakeReviewUC{}, &fakeSender{})

	processed, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("RunCompany() error = %v", err)
	}
	if processed != 0 {
		t.Errorf("processed = %d, want 0", processed)
	}
	if len(repo.logs) != 0 {
		t.Errorf("logs written = %d, want 0", len(repo.logs))
	}
}

func TestRunCompany_AlertGating(t *testing.T) {
	negative := model.Review{ID: "r1", Rating: 1}
	positive := model.Review{ID: "r2", Rating: 5}

	tests := []struct {
		name      string
		alertType string
		recent    []model.Review
		wantFired bool
	}{
		{"all fires on any review", model.AlertTypeAll, []model.Review{positive}, true},
		{"negative_review fires on negative", model.AlertTypeNegativeReview, []model.Review{negative, positive}, true},
		{"negative_review silent without negatives", model.AlertTypeNegativeReview, []model.Review{positive}, false},
		{"rating_change never fires", model.AlertTypeRatingChange, []model.Review{negative}, false},
		{"spike never fires", model.AlertTypeSpike, []model.Review{negative}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{configs: []model.NotificationConfig{emailConfig(tt.alertType)}}
			uc := newTestUsecase(repo, &fakeReviewUC{recent: tt.recent}, &fakeSender{})

			processed, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"})
			if err != nil {
				t.Fatalf("RunCompany() error = %v", err)
			}

			if fired := processed > 0; fired != tt.wantFired {
				t.Errorf("fired = %v, want %v", fired, tt.wantFired)
			}

			wantLogs := 0
			if tt.wantFired {
				wantLogs = 1
			}
			if len(repo.logs) != wantLogs {
				t.Errorf("logs = %d, want %d", len(repo.logs), wantLogs)
			}
		})
	}
}

func TestRunCompany_InactiveConfigsSkipped(t *testing.T) {
	inactive := emailConfig(model.AlertTypeAll)
	inactive.IsActive = false
	repo := &fakeRepo{configs: []model.NotificationConfig{inactive}}
	uc := newTestUsecase(repo, &fakeReviewUC{recent: []model.Review{{Rating: 1}}}, &fakeSender{})

	processed, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("RunCompany() error = %v", err)
	}
	if processed != 0 || len(repo.logs) != 0 {
		t.Errorf("processed/logs = %d/%d, want 0/0", processed, len(repo.logs))
	}
}

// The message is built once per window batch and keyed on the negative
// count, not on the subscription's alert type: an "all" subscriber gets the
// alert wording whenever the window holds any negative review.
func TestRunCompany_MessageContents(t *testing.T) {
	tests := []struct {
		name   string
		recent []model.Review
		want   string
	}{
		{
			name:   "negatives present switch to alert wording",
			recent: []model.Review{{ID: "rv-new", Rating: 1}, {ID: "rv-old", Rating: 5}},
			want:   "Alert: 1 negative review(s) detected. Average rating: 3.0/5",
		},
		{
			name:   "no negatives use update wording",
			recent: []model.Review{{ID: "rv-new", Rating: 5}, {ID: "rv-old", Rating: 4}},
			want:   "Update: New reviews received. Average rating: 4.5/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{configs: []model.NotificationConfig{emailConfig(model.AlertTypeAll)}}
			uc := newTestUsecase(repo, &fakeReviewUC{recent: tt.recent}, &fakeSender{})

			if _, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"}); err != nil {
				t.Fatalf("RunCompany() error = %v", err)
			}

			if len(repo.logs) != 1 {
				t.Fatalf("logs = %d, want 1", len(repo.logs))
			}
			if got := repo.logs[0].Message; got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
			if repo.logs[0].ReviewID != "rv-new" {
				t.Errorf("ReviewID = %q, want the newest review in the window", repo.logs[0].ReviewID)
			}
		})
	}
}

// A failed provider send is recorded as pending, not failed. The row stays
// visible for a retry sweep instead of being closed out as a failure.
func TestRunCompany_FailedSendLogsPending(t *testing.T) {
	repo := &fakeRepo{configs: []model.NotificationConfig{emailConfig(model.AlertTypeAll)}}
	sender := &fakeSender{err: errors.New("provider down")}
	uc := newTestUsecase(repo, &fakeReviewUC{recent: []model.Review{{Rating: 4}}}, sender)

	processed, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"})
	if err != nil {
		t.Fatalf("RunCompany() error = %v", err)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1", processed)
	}

	if len(repo.logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(repo.logs))
	}
	if repo.logs[0].Status != model.NotificationStatusPending {
		t.Errorf("status = %q, want pending", repo.logs[0].Status)
	}
	if repo.logs[0].Sent {
		t.Error("Sent = true on a failed delivery")
	}
}

func TestRunCompany_MissingChannelLogsPending(t *testing.T) {
	cfg := emailConfig(model.AlertTypeAll)
	cfg.NotificationType = model.NotificationTypeSMS // no sms sender registered
	repo := &fakeRepo{configs: []model.NotificationConfig{cfg}}
	uc := newTestUsecase(repo, &fakeReviewUC{recent: []model.Review{{Rating: 4}}}, &fakeSender{})

	if _, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"}); err != nil {
		t.Fatalf("RunCompany() error = %v", err)
	}
	if len(repo.logs) != 1 || repo.logs[0].Status != model.NotificationStatusPending {
		t.Fatalf("logs = %+v, want one pending row", repo.logs)
	}
}

func TestRunCompany_SuccessfulSendLogsSent(t *testing.T) {
	repo := &fakeRepo{configs: []model.NotificationConfig{emailConfig(model.AlertTypeAll)}}
	sender := &fakeSender{}
	uc := newTestUsecase(repo, &fakeReviewUC{recent: []model.Review{{Rating: 4}}}, sender)

	if _, err := uc.RunCompany(context.Background(), model.Scope{CompanyID: "c1"}); err != nil {
		t.Fatalf("RunCompany() error = %v", err)
	}
	if len(repo.logs) != 1 || repo.logs[0].Status != model.NotificationStatusSent || !repo.logs[0].Sent {
		t.Fatalf("logs = %+v, want one sent row", repo.logs)
	}
	if len(sender.sent) != 1 {
		t.Errorf("sender deliveries = %d, want 1", len(sender.sent))
	}
}

func TestRunAll_AggregatesAcrossCompanies(t *testing.T) {
	repo := &fakeRepo{
		configs:   []model.NotificationConfig{emailConfig(model.AlertTypeAll)},
		companies: []string{"c1", "c2"},
	}
	uc := newTestUsecase(repo, &fakeReviewUC{recent: []model.Review{{Rating: 4}}}, &fakeSender{})

	summary, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}
	if summary.Companies != 2 {
		t.Errorf("Companies = %d, want 2", summary.Companies)
	}
	if summary.ProcessedCount != 2 {
		t.Errorf("ProcessedCount = %d, want 2", summary.ProcessedCount)
	}
	if len(summary.Failures) != 0 {
		t.Errorf("Failures = %v, want none", summary.Failures)
	}
}

func TestTest_UnknownConfig(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSender{})

	_, err := uc.Test(context.Background(), model.Scope{CompanyID: "c1"}, "missing")
	if !errors.Is(err, notification.ErrConfigNotFound) {
		t.Errorf("Test() error = %v, want ErrConfigNotFound", err)
	}
}

var (
	_ repository.Repository = (*fakeRepo)(nil)
	_ review.UseCase        = (*fakeReviewUC)(nil)
)
