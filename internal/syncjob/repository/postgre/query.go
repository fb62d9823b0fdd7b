package postgres

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"repupulse-api/internal/model"
)

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

// successRateQuery counts successes against every job in the window, running
// ones included: a job stuck in running drags the rate down until it
// finishes.
func (r *implRepository) successRateQuery(sc model.Scope, since time.Time) (string, []interface{}, error) {
	return r.sb.Select(
		"COUNT(*) FILTER (WHERE status = 'success')",
		"COUNT(*)",
	).
		From("sync_jobs").
		Where(sq.Eq{"company_id": sc.CompanyID}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
}
