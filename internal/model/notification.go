package model

import "time"

// Notification channel types.
const (
	NotificationTypeEmail    = "email"
	NotificationTypeSMS      = "sms"
	NotificationTypeWhatsApp = "whatsapp"
)

// Alert types a config can subscribe to. RatingChange and Spike are part of
// the data model but no dispatch pass evaluates them yet.
const (
	AlertTypeNegativeReview = "negative_review"
	AlertTypeRatingChange   = "rating_change"
	AlertTypeSpike          = "spike"
	AlertTypeAll            = "all"
)

// Notification dispatch outcomes. A failed provider send is recorded as
// pending, not failed; see the dispatcher for the rationale.
const (
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
	NotificationStatusPending = "pending"
)

// NotificationConfig is an alert subscription owned by a company.
type NotificationConfig struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	NotificationType string    `json:"notification_type"`
	Recipient        string    `json:"recipient"`
	AlertType        string    `json:"alert_type"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// NotificationLog is the append-only record of one dispatch attempt.
type NotificationLog struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	NotificationID *string    `json:"notification_id,omitempty"`
	ReviewID       *string    `json:"review_id,omitempty"`
	Status         string     `json:"status"`
	Message        string     `json:"message"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NotificationStats aggregates dispatch logs for one company.
type NotificationStats struct {
	TotalSent    int64 `json:"total_sent"`
	TotalFailed  int64 `json:"total_failed"`
	TotalPending int64 `json:"total_pending"`
}
