package postgres

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"repupulse-api/internal/model"
	"repupulse-api/internal/notification/repository"
	postgresPkg "repupulse-api/pkg/postgre"
)

var logColumns = []string{
	"id",
	"company_id",
	"notification_id",
	"review_id",
	"status",
	"message",
	"sent_at",
	"created_at",
}

type logRow struct {
	ID             string
	CompanyID      string
	NotificationID null.String
	ReviewID       null.String
	Status         string
	Message        string
	SentAt         null.Time
	CreatedAt      time.Time
}

func (row logRow) toModel() model.NotificationLog {
	l := model.NotificationLog{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		Status:    row.Status,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
	}

	if row.NotificationID.Valid {
		l.NotificationID = &row.NotificationID.String
	}
	if row.ReviewID.Valid {
		l.ReviewID = &row.ReviewID.String
	}
	if row.SentAt.Valid {
		l.SentAt = &row.SentAt.Time
	}

	return l
}

func scanLog(scanner interface{ Scan(dest ...any) error }) (model.NotificationLog, error) {
	var row logRow
	if err := scanner.Scan(
		&row.ID,
		&row.CompanyID,
		&row.NotificationID,
		&row.ReviewID,
		&row.Status,
		&row.Message,
		&row.SentAt,
		&row.CreatedAt,
	); err != nil {
		return model.NotificationLog{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) InsertLog(ctx context.Context, sc model.Scope, opts repository.InsertLogOptions) (model.NotificationLog, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.InsertLog.IsUUID: %v", err)
		return model.NotificationLog{}, err
	}

	now := r.clock()

	var notificationID, reviewID null.String
	if opts.NotificationID != "" {
		notificationID = null.StringFrom(opts.NotificationID)
	}
	if opts.ReviewID != "" {
		reviewID = null.StringFrom(opts.ReviewID)
	}

	var sentAt null.Time
	if opts.Sent {
		sentAt = null.TimeFrom(now)
	}

	query, args, err := r.sb.Insert("notification_logs").
		Columns("id", "company_id", "notification_id", "review_id", "status", "message", "sent_at", "created_at").
		Values(uuid.NewString(), sc.CompanyID, notificationID, reviewID, opts.Status, opts.Message, sentAt, now).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.InsertLog.ToSql: %v", err)
		return model.NotificationLog{}, err
	}

	logEntry, err := scanLog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.InsertLog.scanLog: %v", err)
		return model.NotificationLog{}, err
	}

	return logEntry, nil
}

func (r *implRepository) ListLogs(ctx context.Context, sc model.Scope, limit int) ([]model.NotificationLog, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListLogs.IsUUID: %v", err)
		return nil, err
	}

	b := r.sb.Select(logColumns...).
		From("notification_logs").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListLogs.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListLogs.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var logs []model.NotificationLog
	for rows.Next() {
		logEntry, err := scanLog(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.notification.repository.postgres.ListLogs.scanLog: %v", err)
			return nil, err
		}
		logs = append(logs, logEntry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListLogs.rows: %v", err)
		return nil, err
	}

	return logs, nil
}

func (r *implRepository) LogStats(ctx context.Context, sc model.Scope) (model.NotificationStats, error) {
	var stats model.NotificationStats

	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.LogStats.IsUUID: %v", err)
		return stats, err
	}

	query, args, err := r.sb.Select(
		"COUNT(*) FILTER (WHERE status = 'sent')",
		"COUNT(*) FILTER (WHERE status = 'failed')",
		"COUNT(*) FILTER (WHERE status = 'pending')",
	).
		From("notification_logs").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.LogStats.ToSql: %v", err)
		return stats, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&stats.TotalSent, &stats.TotalFailed, &stats.TotalPending); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.LogStats.Scan: %v", err)
		return stats, err
	}

	return stats, nil
}
