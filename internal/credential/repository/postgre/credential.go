package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"repupulse-api/internal/credential"
	"repupulse-api/internal/credential/repository"
	"repupulse-api/internal/model"
	postgresPkg "repupulse-api/pkg/postgre"
)

var credentialColumns = []string{
	"id",
	"company_id",
	"platform_name",
	"key_name",
	"encrypted_value",
	"created_at",
}

func scanCredential(scanner interface{ Scan(dest ...any) error }) (model.Credential, error) {
	var c model.Credential
	if err := scanner.Scan(
		&c.ID,
		&c.CompanyID,
		&c.PlatformName,
		&c.KeyName,
		&c.Value,
		&c.CreatedAt,
	); err != nil {
		return model.Credential{}, err
	}

	return c, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, platformName, keyName string) (model.Credential, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.GetOne.IsUUID: %v", err)
		return model.Credential{}, err
	}

	query, args, err := r.sb.Select(credentialColumns...).
		From("api_keys").
		Where(sq.Eq{
			"company_id":    sc.CompanyID,
			"platform_name": platformName,
			"key_name":      keyName,
		}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.GetOne.ToSql: %v", err)
		return model.Credential{}, err
	}

	c, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Credential{}, credential.ErrKeyNotFound
		}
		r.l.Errorf(ctx, "internal.credential.repository.postgres.GetOne.scanCredential: %v", err)
		return model.Credential{}, err
	}

	return c, nil
}

func (r *implRepository) Upsert(ctx context.Context, sc model.Scope, opts repository.UpsertOptions) (model.Credential, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Upsert.IsUUID: %v", err)
		return model.Credential{}, err
	}

	query, args, err := r.sb.Insert("api_keys").
		Columns("id", "company_id", "platform_name", "key_name", "encrypted_value", "created_at").
		Values(uuid.NewString(), sc.CompanyID, opts.PlatformName, opts.KeyName, opts.Value, r.clock()).
		Suffix(`ON CONFLICT (company_id, platform_name, key_name) DO UPDATE SET
			encrypted_value = EXCLUDED.encrypted_value
		RETURNING ` + strings.Join(credentialColumns, ", ")).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Upsert.ToSql: %v", err)
		return model.Credential{}, err
	}

	c, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Upsert.scanCredential: %v", err)
		return model.Credential{}, err
	}

	return c, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, platformName string) ([]model.Credential, error) {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.List.IsUUID: %v", err)
		return nil, err
	}

	b := r.sb.Select(credentialColumns...).
		From("api_keys").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		OrderBy("platform_name", "key_name")

	if platformName != "" {
		b = b.Where(sq.Eq{"platform_name": platformName})
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.List.ToSql: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.List.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	var creds []model.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.credential.repository.postgres.List.scanCredential: %v", err)
			return nil, err
		}
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.List.rows: %v", err)
		return nil, err
	}

	return creds, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, platformName, keyName string) error {
	if err := postgresPkg.IsUUID(sc.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	query, args, err := r.sb.Delete("api_keys").
		Where(sq.Eq{
			"company_id":    sc.CompanyID,
			"platform_name": platformName,
			"key_name":      keyName,
		}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Delete.ToSql: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.credential.repository.postgres.Delete.ExecContext: %v", err)
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return credential.ErrKeyNotFound
	}

	return nil
}
