package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repupulse-api/internal/model"
	"repupulse-api/internal/review"
	"repupulse-api/internal/review/repository"
	pkgLog "repupulse-api/pkg/log"
	"repupulse-api/pkg/paginator"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeRepo struct {
	upserted    []model.Review
	upsertCount int
	upsertErr   error
	recent      []model.Review
	listed      []model.Review
}

func (f *fakeRepo) UpsertBatch(_ context.Context, _ model.Scope, opts repository.UpsertBatchOptions) (int, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.upserted = opts.Reviews
	if f.upsertCount > 0 {
		return f.upsertCount, nil
	}
	return len(opts.Reviews), nil
}

func (f *fakeRepo) Recent(context.Context, model.Scope, time.Time) ([]model.Review, error) {
	return f.recent, nil
}

func (f *fakeRepo) List(context.Context, model.Scope, repository.ListOptions) ([]model.Review, error) {
	return f.listed, nil
}

func (f *fakeRepo) Get(context.Context, model.Scope, repository.GetOptions) ([]model.Review, paginator.Paginator, error) {
	return f.listed, paginator.Paginator{}, nil
}

func (f *fakeRepo) Search(context.Context, model.Scope, string, int) ([]model.Review, error) {
	return f.listed, nil
}

func (f *fakeRepo) Stats(context.Context, model.Scope) (model.ReviewStats, error) {
	return model.ReviewStats{}, nil
}

type fakeAnalyzer struct {
	calls int
}

func (f *fakeAnalyzer) Analyze(context.Context, string) model.SentimentResult {
	f.calls++
	return model.SentimentResult{Sentiment: model.SentimentNeutral, Score: 0.5, Keywords: []string{}}
}

func TestStoreBatch_ClassifiesOnlyUnclassified(t *testing.T) {
	repo := &fakeRepo{}
	analyzer := &fakeAnalyzer{}
	uc := New(testLogger(), repo, analyzer)

	pre := &model.SentimentResult{Sentiment: model.SentimentPositive, Score: 0.9, Keywords: []string{"great"}}
	sc := model.Scope{CompanyID: "c1"}

	count, err := uc.StoreBatch(context.Background(), sc, review.StoreBatchInput{
		Reviews: []model.Review{
			{ReviewID: "a", Content: "great", Sentiment: pre},
			{ReviewID: "b", Content: "meh"},
			{ReviewID: "c", Content: "bad"},
		},
	})
	if err != nil {
		t.Fatalf("StoreBatch() error = %v", err)
	}
	if count != 3 {
		t.Errorf("StoreBatch() count = %d, want 3", count)
	}
	if analyzer.calls != 2 {
		t.Errorf("analyzer calls = %d, want 2", analyzer.calls)
	}

	if got := repo.upserted[0].Sentiment; got != pre {
		t.Errorf("pre-classified review was re-classified: %+v", got)
	}
	for _, rv := range repo.upserted[1:] {
		if rv.Sentiment == nil {
			t.Errorf("review %s reached the repository unclassified", rv.ReviewID)
		}
	}
}

func TestStoreBatch_RepositoryErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	uc := New(testLogger(), &fakeRepo{upsertErr: wantErr}, &fakeAnalyzer{})

	_, err := uc.StoreBatch(context.Background(), model.Scope{CompanyID: "c1"}, review.StoreBatchInput{
		Reviews: []model.Review{{ReviewID: "a", Content: "x"}},
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("StoreBatch() error = %v, want %v", err, wantErr)
	}
}

func TestList_RejectsInvalidSentimentFilter(t *testing.T) {
	uc := New(testLogger(), &fakeRepo{}, &fakeAnalyzer{})

	tests := []struct {
		name      string
		sentiment string
		wantErr   error
	}{
		{"valid positive", model.SentimentPositive, nil},
		{"valid empty means no filter", "", nil},
		{"unknown label", "angry", review.ErrInvalidSentiment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.List(context.Background(), model.Scope{CompanyID: "c1"}, review.ListInput{
				Filter: review.Filter{Sentiment: tt.sentiment},
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("List() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearch_RequiresKeyword(t *testing.T) {
	uc := New(testLogger(), &fakeRepo{}, &fakeAnalyzer{})

	_, err := uc.Search(context.Background(), model.Scope{CompanyID: "c1"}, review.SearchInput{})
	if !errors.Is(err, review.ErrEmptyKeyword) {
		t.Errorf("Search() error = %v, want ErrEmptyKeyword", err)
	}
}

var _ repository.Repository = (*fakeRepo)(nil)
