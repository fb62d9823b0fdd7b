package notification

import (
	"time"

	"repupulse-api/internal/model"
)

const (
	// DefaultWindow is the trailing window of freshly fetched reviews one
	// dispatch pass looks at.
	DefaultWindow = 30 * time.Minute
	// DefaultNegativeThreshold is the rating below which a review counts as
	// negative.
	DefaultNegativeThreshold = 3.0
	// DefaultLogListLimit bounds dispatch-log listings.
	DefaultLogListLimit = 100
)

type CreateConfigInput struct {
	NotificationType string
	Recipient        string
	AlertType        string
	IsActive         bool
}

type UpdateConfigInput struct {
	ID               string
	NotificationType *string
	Recipient        *string
	AlertType        *string
	IsActive         *bool
}

// RunSummary is the outcome of a dispatch pass over all companies.
type RunSummary struct {
	Companies      int
	ProcessedCount int
	Failures       []string
}

// ValidNotificationType reports whether t names a supported channel.
func ValidNotificationType(t string) bool {
	switch t {
	case model.NotificationTypeEmail, model.NotificationTypeSMS, model.NotificationTypeWhatsApp:
		return true
	}
	return false
}

// ValidAlertType reports whether t is a member of the alert-type set.
func ValidAlertType(t string) bool {
	switch t {
	case model.AlertTypeNegativeReview, model.AlertTypeRatingChange, model.AlertTypeSpike, model.AlertTypeAll:
		return true
	}
	return false
}
