package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"repupulse-api/internal/model"
	"repupulse-api/internal/review/repository"
	"repupulse-api/pkg/paginator"
)

type reviewRow struct {
	ID                string
	CompanyID         string
	PlatformID        null.String
	PlatformName      string
	ReviewID          string
	Author            string
	Content           string
	Rating            float64
	Sentiment         null.String
	SentimentScore    null.Float64
	SentimentKeywords pq.StringArray
	URL               string
	ReviewedAt        time.Time
	FetchedAt         time.Time
	CreatedAt         time.Time
}

func (row reviewRow) toModel() model.Review {
	rv := model.Review{
		ID:           row.ID,
		CompanyID:    row.CompanyID,
		PlatformName: row.PlatformName,
		ReviewID:     row.ReviewID,
		Author:       row.Author,
		Content:      row.Content,
		Rating:       row.Rating,
		URL:          row.URL,
		ReviewedAt:   row.ReviewedAt,
		FetchedAt:    row.FetchedAt,
		CreatedAt:    row.CreatedAt,
	}

	if row.PlatformID.Valid {
		rv.PlatformID = &row.PlatformID.String
	}

	if row.Sentiment.Valid {
		rv.Sentiment = &model.SentimentResult{
			Sentiment: row.Sentiment.String,
			Score:     row.SentimentScore.Float64,
			Keywords:  row.SentimentKeywords,
		}
	}

	return rv
}

func scanRows(rows *sql.Rows) ([]model.Review, error) {
	var reviews []model.Review

	for rows.Next() {
		var row reviewRow
		if err := rows.Scan(
			&row.ID,
			&row.CompanyID,
			&row.PlatformID,
			&row.PlatformName,
			&row.ReviewID,
			&row.Author,
			&row.Content,
			&row.Rating,
			&row.Sentiment,
			&row.SentimentScore,
			&row.SentimentKeywords,
			&row.URL,
			&row.ReviewedAt,
			&row.FetchedAt,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}

		reviews = append(reviews, row.toModel())
	}

	return reviews, rows.Err()
}

func (r *implRepository) UpsertBatch(ctx context.Context, sc model.Scope, opts repository.UpsertBatchOptions) (int, error) {
	if len(opts.Reviews) == 0 {
		return 0, nil
	}

	now := r.clock()

	b := r.sb.Insert("reviews").Columns(
		"id",
		"company_id",
		"platform_id",
		"platform_name",
		"review_id",
		"author",
		"content",
		"rating",
		"sentiment",
		"sentiment_score",
		"sentiment_keywords",
		"url",
		"reviewed_at",
		"fetched_at",
		"created_at",
	)

	for _, rv := range opts.Reviews {
		var platformID null.String
		if rv.PlatformID != nil {
			platformID = null.StringFrom(*rv.PlatformID)
		}

		var (
			sentiment null.String
			score     null.Float64
			keywords  pq.StringArray
		)
		if rv.Sentiment != nil {
			sentiment = null.StringFrom(rv.Sentiment.Sentiment)
			score = null.Float64From(rv.Sentiment.Score)
			keywords = rv.Sentiment.Keywords
		}

		b = b.Values(
			uuid.NewString(),
			sc.CompanyID,
			platformID,
			rv.PlatformName,
			rv.ReviewID,
			rv.Author,
			rv.Content,
			rv.Rating,
			sentiment,
			score,
			keywords,
			rv.URL,
			rv.ReviewedAt,
			now,
			now,
		)
	}

	b = b.Suffix(`ON CONFLICT (company_id, platform_name, review_id) DO UPDATE SET
		author = EXCLUDED.author,
		content = EXCLUDED.content,
		rating = EXCLUDED.rating,
		sentiment = EXCLUDED.sentiment,
		sentiment_score = EXCLUDED.sentiment_score,
		sentiment_keywords = EXCLUDED.sentiment_keywords,
		url = EXCLUDED.url,
		reviewed_at = EXCLUDED.reviewed_at,
		fetched_at = EXCLUDED.fetched_at
	RETURNING id`)

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.UpsertBatch.ToSql: %v", err)
		return 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.UpsertBatch.QueryContext: %v", err)
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.UpsertBatch.rows: %v", err)
		return 0, err
	}

	return count, nil
}

func (r *implRepository) Recent(ctx context.Context, sc model.Scope, since time.Time) ([]model.Review, error) {
	b, err := r.buildSelect(ctx, sc)
	if err != nil {
		return nil, err
	}

	// The dispatch window is keyed on ingestion time, not on when the review
	// was written on the source platform.
	query, args, err := b.
		Where(sq.GtOrEq{"fetched_at": since}).
		OrderBy("fetched_at DESC").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Recent.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Recent.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	reviews, err := scanRows(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Recent.scanRows: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Review, error) {
	b, err := r.buildSelect(ctx, sc)
	if err != nil {
		return nil, err
	}

	b = applyFilter(b, opts.Filter).OrderBy("reviewed_at DESC")
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.List.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.List.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	reviews, err := scanRows(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.List.scanRows: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Review, paginator.Paginator, error) {
	opts.PagQuery.Adjust()

	b, err := r.buildSelect(ctx, sc)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}
	b = applyFilter(b, opts.Filter)

	countQuery, countArgs, err := applyFilter(
		r.sb.Select("COUNT(*)").From("reviews").Where(sq.Eq{"company_id": sc.CompanyID}),
		opts.Filter,
	).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Get.countToSql: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Get.count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	query, args, err := b.
		OrderBy("reviewed_at DESC").
		Limit(uint64(opts.PagQuery.Limit)).
		Offset(uint64(opts.PagQuery.Offset())).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Get.ToSql: %v", err)
		return nil, paginator.Paginator{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Get.QueryContext: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	reviews, err := scanRows(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Get.scanRows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return reviews, paginator.Paginator{
		Total:       total,
		Count:       int64(len(reviews)),
		PerPage:     opts.PagQuery.Limit,
		CurrentPage: opts.PagQuery.Page,
	}, nil
}

func (r *implRepository) Search(ctx context.Context, sc model.Scope, keyword string, limit int) ([]model.Review, error) {
	b, err := r.buildSelect(ctx, sc)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = paginator.DefaultLimit
	}

	query, args, err := b.
		Where(sq.Or{
			sq.ILike{"content": "%" + keyword + "%"},
			sq.ILike{"author": "%" + keyword + "%"},
		}).
		OrderBy("reviewed_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Search.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Search.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	reviews, err := scanRows(rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Search.scanRows: %v", err)
		return nil, err
	}

	return reviews, nil
}

func (r *implRepository) Stats(ctx context.Context, sc model.Scope) (model.ReviewStats, error) {
	stats := model.ReviewStats{
		SentimentBreakdown: make(map[string]int64),
		PlatformBreakdown:  make(map[string]int64),
		RatingDistribution: make(map[int]int64),
	}

	totalQuery, totalArgs, err := r.sb.
		Select("COUNT(*)", "COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.totalToSql: %v", err)
		return stats, err
	}

	if err := r.db.QueryRowContext(ctx, totalQuery, totalArgs...).
		Scan(&stats.TotalReviews, &stats.AverageRating); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.total: %v", err)
		return stats, err
	}

	if err := r.groupCount(ctx, sc, "COALESCE(sentiment, 'unclassified')", func(key string, count int64) {
		stats.SentimentBreakdown[key] = count
	}); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.sentimentGroup: %v", err)
		return stats, err
	}

	if err := r.groupCount(ctx, sc, "platform_name", func(key string, count int64) {
		stats.PlatformBreakdown[key] = count
	}); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.platformGroup: %v", err)
		return stats, err
	}

	ratingQuery, ratingArgs, err := r.sb.
		Select("ROUND(rating)::int AS bucket", "COUNT(*)").
		From("reviews").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		GroupBy("bucket").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.ratingToSql: %v", err)
		return stats, err
	}

	rows, err := r.db.QueryContext(ctx, ratingQuery, ratingArgs...)
	if err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.ratingQuery: %v", err)
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bucket int
			count  int64
		)
		if err := rows.Scan(&bucket, &count); err != nil {
			r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.ratingScan: %v", err)
			return stats, err
		}
		stats.RatingDistribution[bucket] = count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.Stats.ratingRows: %v", err)
		return stats, err
	}

	return stats, nil
}

func (r *implRepository) groupCount(ctx context.Context, sc model.Scope, expr string, collect func(key string, count int64)) error {
	query, args, err := r.sb.
		Select(expr+" AS grp", "COUNT(*)").
		From("reviews").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		GroupBy("grp").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int64
		)
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		collect(key, count)
	}

	return rows.Err()
}
