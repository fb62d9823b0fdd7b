package postgres

import (
	"strings"
	"testing"
	"time"

	"repupulse-api/internal/model"
	pkgLog "repupulse-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelError,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

// The rate denominator must cover every job created in the window, running
// ones included. A window of one success and three stuck running jobs is a
// 25% rate, not 100%.
func TestSuccessRateQuery_DenominatorCountsAllJobs(t *testing.T) {
	r := New(testLogger(), nil)
	sc := model.Scope{CompanyID: "9f1c7f9a-46c7-4b64-9f04-70b0a2f3f1a1"}

	query, args, err := r.successRateQuery(sc, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("successRateQuery() error = %v", err)
	}

	if !strings.Contains(query, "COUNT(*) FILTER (WHERE status = 'success')") {
		t.Errorf("query %q lacks the success numerator", query)
	}
	if !strings.Contains(query, ", COUNT(*) FROM sync_jobs") {
		t.Errorf("query %q does not count all window jobs in the denominator", query)
	}
	if strings.Count(query, "FILTER") != 1 {
		t.Errorf("query %q filters the denominator by status", query)
	}
	if len(args) != 2 {
		t.Errorf("args = %d, want company and window bound", len(args))
	}
}
