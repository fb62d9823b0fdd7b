package model

import "time"

// Sync job lifecycle states. Running jobs transition exactly once into
// success or failed; terminal rows are an append-only audit log.
const (
	SyncStatusPending = "pending"
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncJob is the audit record of one fetch attempt for one
// (company, platform) pair.
type SyncJob struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	PlatformName   string     `json:"platform_name"`
	Status         string     `json:"status"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	ReviewsFetched int        `json:"reviews_fetched"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IsTerminal reports whether the job has reached a final state.
func (j SyncJob) IsTerminal() bool {
	return j.Status == SyncStatusSuccess || j.Status == SyncStatusFailed
}

// SyncPlatformStats aggregates jobs for a single platform.
type SyncPlatformStats struct {
	Successful   int64 `json:"successful"`
	Failed       int64 `json:"failed"`
	TotalReviews int64 `json:"total_reviews"`
}

// SyncStats aggregates sync jobs for one company.
type SyncStats struct {
	TotalJobs           int64                        `json:"total_jobs"`
	SuccessfulJobs      int64                        `json:"successful_jobs"`
	FailedJobs          int64                        `json:"failed_jobs"`
	TotalReviewsFetched int64                        `json:"total_reviews_fetched"`
	ByPlatform          map[string]SyncPlatformStats `json:"by_platform"`
}
