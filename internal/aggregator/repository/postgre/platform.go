package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"repupulse-api/internal/model"
	postgresPkg "repupulse-api/pkg/postgre"
)

func (r *implRepository) ActiveByCompany(ctx context.Context, sc model.Scope) ([]model.PlatformConfig, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.ActiveByCompany.IsUUID: %v", err)
		return nil, err
	}

	query, args, err := r.sb.Select("id", "company_id", "platform_name", "business_id", "is_active", "created_at").
		From("platforms").
		Where(sq.Eq{"company_id": sc.CompanyID, "is_active": true}).
		OrderBy("platform_name").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.ActiveByCompany.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.ActiveByCompany.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var configs []model.PlatformConfig
	for rows.Next() {
		var cfg model.PlatformConfig
		if err := rows.Scan(&cfg.ID, &cfg.CompanyID, &cfg.PlatformName, &cfg.BusinessID, &cfg.IsActive, &cfg.CreatedAt); err != nil {
			r.l.Errorf(ctx, "internal.aggregator.repository.postgres.ActiveByCompany.Scan: %v", err)
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.ActiveByCompany.rows: %v", err)
		return nil, err
	}

	return configs, nil
}

func (r *implRepository) Companies(ctx context.Context) ([]string, error) {
	query, args, err := r.sb.Select("DISTINCT company_id").
		From("platforms").
		Where(sq.Eq{"is_active": true}).
		OrderBy("company_id").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.Companies.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.Companies.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "internal.aggregator.repository.postgres.Companies.Scan: %v", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.aggregator.repository.postgres.Companies.rows: %v", err)
		return nil, err
	}

	return ids, nil
}
