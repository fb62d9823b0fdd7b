package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repupulse-api/internal/model"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/notification/repository"
	postgresPkg "repupulse-api/pkg/postgre"
)

var configColumns = []string{
	"id",
	"company_id",
	"notification_type",
	"recipient",
	"alert_type",
	"is_active",
	"created_at",
}

func scanConfig(scanner interface{ Scan(dest ...any) error }) (model.NotificationConfig, error) {
	var c model.NotificationConfig
	if err := scanner.Scan(
		&c.ID,
		&c.CompanyID,
		&c.NotificationType,
		&c.Recipient,
		&c.AlertType,
		&c.IsActive,
		&c.CreatedAt,
	); err != nil {
		return model.NotificationConfig{}, err
	}

	return c, nil
}

func (r *implRepository) CreateConfig(ctx context.Context, sc model.Scope, opts repository.CreateConfigOptions) (model.NotificationConfig, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CreateConfig.IsUUID: %v", err)
		return model.NotificationConfig{}, err
	}

	query, args, err := r.sb.Insert("notifications").
		Columns("id", "company_id", "notification_type", "recipient", "alert_type", "is_active", "created_at").
		Values(uuid.NewString(), sc.CompanyID, opts.NotificationType, opts.Recipient, opts.AlertType, opts.IsActive, r.clock()).
		Suffix("RETURNING " + strings.Join(configColumns, ", ")).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CreateConfig.ToSql: %v", err)
		return model.NotificationConfig{}, err
	}

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CreateConfig.scanConfig: %v", err)
		return model.NotificationConfig{}, err
	}

	return cfg, nil
}

func (r *implRepository) UpdateConfig(ctx context.Context, sc model.Scope, opts repository.UpdateConfigOptions) (model.NotificationConfig, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.UpdateConfig.IsUUID: %v", err)
		return model.NotificationConfig{}, err
	}

	b := r.sb.Update("notifications").
		Where(sq.Eq{"id": opts.ID, "company_id": sc.CompanyID})

	changed := false
	if opts.NotificationType != nil {
		b = b.Set("notification_type", *opts.NotificationType)
		changed = true
	}
	if opts.Recipient != nil {
		b = b.Set("recipient", *opts.Recipient)
		changed = true
	}
	if opts.AlertType != nil {
		b = b.Set("alert_type", *opts.AlertType)
		changed = true
	}
	if opts.IsActive != nil {
		b = b.Set("is_active", *opts.IsActive)
		changed = true
	}

	if !changed {
		return model.NotificationConfig{}, notification.ErrNothingToUpdate
	}

	query, args, err := b.Suffix("RETURNING " + strings.Join(configColumns, ", ")).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.UpdateConfig.ToSql: %v", err)
		return model.NotificationConfig{}, err
	}

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationConfig{}, notification.ErrConfigNotFound
		}
		r.l.Errorf(ctx, "internal.notification.repository.postgres.UpdateConfig.scanConfig: %v", err)
		return model.NotificationConfig{}, err
	}

	return cfg, nil
}

func (r *implRepository) DeleteConfig(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.DeleteConfig.IsUUID: %v", err)
		return err
	}

	query, args, err := r.sb.Delete("notifications").
		Where(sq.Eq{"id": id, "company_id": sc.CompanyID}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.DeleteConfig.ToSql: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.DeleteConfig.ExecContext: %v", err)
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notification.ErrConfigNotFound
	}

	return nil
}

func (r *implRepository) ListConfigs(ctx context.Context, sc model.Scope, activeOnly bool) ([]model.NotificationConfig, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListConfigs.IsUUID: %v", err)
		return nil, err
	}

	b := r.sb.Select(configColumns...).
		From("notifications").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		OrderBy("created_at DESC")

	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListConfigs.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListConfigs.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var configs []model.NotificationConfig
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.notification.repository.postgres.ListConfigs.scanConfig: %v", err)
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListConfigs.rows: %v", err)
		return nil, err
	}

	return configs, nil
}

func (r *implRepository) Companies(ctx context.Context) ([]string, error) {
	query, args, err := r.sb.Select("DISTINCT company_id").
		From("notifications").
		Where(sq.Eq{"is_active": true}).
		OrderBy("company_id").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Companies.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Companies.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "internal.notification.repository.postgres.Companies.Scan: %v", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Companies.rows: %v", err)
		return nil, err
	}

	return ids, nil
}
