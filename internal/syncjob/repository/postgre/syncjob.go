package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"repupulse-api/internal/model"
	"repupulse-api/internal/syncjob"
	"repupulse-api/internal/syncjob/repository"
	postgresPkg "repupulse-api/pkg/postgre"
)

var jobColumns = []string{
	"id",
	"company_id",
	"platform_name",
	"status",
	"error_message",
	"reviews_fetched",
	"started_at",
	"completed_at",
	"created_at",
}

type jobRow struct {
	ID             string
	CompanyID      string
	PlatformName   string
	Status         string
	ErrorMessage   null.String
	ReviewsFetched int
	StartedAt      null.Time
	CompletedAt    null.Time
	CreatedAt      time.Time
}

func (row jobRow) toModel() model.SyncJob {
	job := model.SyncJob{
		ID:             row.ID,
		CompanyID:      row.CompanyID,
		PlatformName:   row.PlatformName,
		Status:         row.Status,
		ReviewsFetched: row.ReviewsFetched,
		CreatedAt:      row.CreatedAt,
	}

	if row.ErrorMessage.Valid {
		job.ErrorMessage = &row.ErrorMessage.String
	}
	if row.StartedAt.Valid {
		job.StartedAt = &row.StartedAt.Time
	}
	if row.CompletedAt.Valid {
		job.CompletedAt = &row.CompletedAt.Time
	}

	return job
}

func scanJob(scanner interface{ Scan(dest ...any) error }) (model.SyncJob, error) {
	var row jobRow
	if err := scanner.Scan(
		&row.ID,
		&row.CompanyID,
		&row.PlatformName,
		&row.Status,
		&row.ErrorMessage,
		&row.ReviewsFetched,
		&row.StartedAt,
		&row.CompletedAt,
		&row.CreatedAt,
	); err != nil {
		return model.SyncJob{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.SyncJob, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Create.IsUUID: %v", err)
		return model.SyncJob{}, err
	}

	now := r.clock()

	query, args, err := r.sb.Insert("sync_jobs").
		Columns("id", "company_id", "platform_name", "status", "reviews_fetched", "started_at", "created_at").
		Values(uuid.NewString(), sc.CompanyID, opts.PlatformName, model.SyncStatusRunning, 0, now, now).
		Suffix("RETURNING " + columnList(jobColumns)).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Create.ToSql: %v", err)
		return model.SyncJob{}, err
	}

	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Create.scanJob: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

func (r *implRepository) Finish(ctx context.Context, sc model.Scope, opts repository.FinishOptions) (model.SyncJob, error) {
	if opts.Status != model.SyncStatusSuccess && opts.Status != model.SyncStatusFailed {
		return model.SyncJob{}, syncjob.ErrInvalidStatus
	}

	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Finish.IsUUID: %v", err)
		return model.SyncJob{}, err
	}

	var errMsg null.String
	if opts.ErrorMessage != "" {
		errMsg = null.StringFrom(opts.ErrorMessage)
	}

	// The status guard makes completion idempotent-hostile on purpose:
	// a terminal job must not be rewritten by a late or duplicate finish.
	query, args, err := r.sb.Update("sync_jobs").
		Set("status", opts.Status).
		Set("reviews_fetched", opts.ReviewsFetched).
		Set("error_message", errMsg).
		Set("completed_at", r.clock()).
		Where(sq.Eq{
			"id":         opts.ID,
			"company_id": sc.CompanyID,
			"status":     model.SyncStatusRunning,
		}).
		Suffix("RETURNING " + columnList(jobColumns)).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Finish.ToSql: %v", err)
		return model.SyncJob{}, err
	}

	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SyncJob{}, r.classifyFinishMiss(ctx, sc, opts.ID)
		}
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Finish.scanJob: %v", err)
		return model.SyncJob{}, err
	}

	return job, nil
}

// classifyFinishMiss decides whether a zero-row finish means the job does not
// exist or that it already reached a terminal state.
func (r *implRepository) classifyFinishMiss(ctx context.Context, sc model.Scope, id string) error {
	query, args, err := r.sb.Select("status").
		From("sync_jobs").
		Where(sq.Eq{"id": id, "company_id": sc.CompanyID}).
		ToSql()
	if err != nil {
		return err
	}

	var status string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return syncjob.ErrJobNotFound
		}
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.classifyFinishMiss.Scan: %v", err)
		return err
	}

	return syncjob.ErrJobTerminal
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.SyncJob, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.List.IsUUID: %v", err)
		return nil, err
	}

	b := r.sb.Select(jobColumns...).
		From("sync_jobs").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		OrderBy("created_at DESC")

	if opts.PlatformName != "" {
		b = b.Where(sq.Eq{"platform_name": opts.PlatformName})
	}
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.List.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.List.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var jobs []model.SyncJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.syncjob.repository.postgres.List.scanJob: %v", err)
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.List.rows: %v", err)
		return nil, err
	}

	return jobs, nil
}

func (r *implRepository) Latest(ctx context.Context, sc model.Scope, platformName string) (model.SyncJob, error) {
	jobs, err := r.List(ctx, sc, repository.ListOptions{PlatformName: platformName, Limit: 1})
	if err != nil {
		return model.SyncJob{}, err
	}
	if len(jobs) == 0 {
		return model.SyncJob{}, syncjob.ErrJobNotFound
	}

	return jobs[0], nil
}

func (r *implRepository) Stats(ctx context.Context, sc model.Scope) (model.SyncStats, error) {
	stats := model.SyncStats{
		ByPlatform: make(map[string]model.SyncPlatformStats),
	}

	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Stats.IsUUID: %v", err)
		return stats, err
	}

	query, args, err := r.sb.Select(
		"platform_name",
		"COUNT(*) FILTER (WHERE status = 'success')",
		"COUNT(*) FILTER (WHERE status = 'failed')",
		"COUNT(*)",
		"COALESCE(SUM(reviews_fetched), 0)",
	).
		From("sync_jobs").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		GroupBy("platform_name").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Stats.ToSql: %v", err)
		return stats, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Stats.QueryContext: %v", err)
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			platform string
			ps       model.SyncPlatformStats
			total    int64
		)
		if err := rows.Scan(&platform, &ps.Successful, &ps.Failed, &total, &ps.TotalReviews); err != nil {
			r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Stats.Scan: %v", err)
			return stats, err
		}

		stats.ByPlatform[platform] = ps
		stats.TotalJobs += total
		stats.SuccessfulJobs += ps.Successful
		stats.FailedJobs += ps.Failed
		stats.TotalReviewsFetched += ps.TotalReviews
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.Stats.rows: %v", err)
		return stats, err
	}

	return stats, nil
}

func (r *implRepository) SuccessRate(ctx context.Context, sc model.Scope, windowDays int) (float64, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.SuccessRate.IsUUID: %v", err)
		return 0, err
	}

	since := r.clock().AddDate(0, 0, -windowDays)

	query, args, err := r.successRateQuery(sc, since)
	if err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.SuccessRate.ToSql: %v", err)
		return 0, err
	}

	var succeeded, total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&succeeded, &total); err != nil {
		r.l.Errorf(ctx, "internal.syncjob.repository.postgres.SuccessRate.Scan: %v", err)
		return 0, err
	}

	// An empty window is a 0% rate, not an error.
	if total == 0 {
		return 0, nil
	}

	return float64(succeeded) / float64(total) * 100, nil
}
