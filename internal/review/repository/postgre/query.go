package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"repupulse-api/internal/model"
	"repupulse-api/internal/review/repository"
	postgresPkg "repupulse-api/pkg/postgre"
)

var reviewColumns = []string{
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
}

func (r *implRepository) buildSelect(ctx context.Context, sc model.Scope) (sq.SelectBuilder, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.review.repository.postgres.buildSelect.IsUUID: %v", err)
		return sq.SelectBuilder{}, err
	}

	return r.sb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"company_id": sc.CompanyID}), nil
}

func applyFilter(b sq.SelectBuilder, f repository.Filter) sq.SelectBuilder {
	if f.PlatformName != "" {
		b = b.Where(sq.Eq{"platform_name": f.PlatformName})
	}

	if f.Sentiment != "" {
		b = b.Where(sq.Eq{"sentiment": f.Sentiment})
	}

	if f.MinRating > 0 {
		b = b.Where(sq.GtOrEq{"rating": f.MinRating})
	}

	if f.MaxRating > 0 {
		b = b.Where(sq.LtOrEq{"rating": f.MaxRating})
	}

	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"reviewed_at": f.From})
	}

	if !f.To.IsZero() {
		b = b.Where(sq.LtOrEq{"reviewed_at": f.To})
	}

	return b
}
