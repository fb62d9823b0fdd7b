package repository

type CreateConfigOptions struct {
	NotificationType string
	Recipient        string
	AlertType        string
	IsActive         bool
}

type UpdateConfigOptions struct {
	ID               string
	NotificationType *string
	Recipient        *string
	AlertType        *string
	IsActive         *bool
}

type InsertLogOptions struct {
	NotificationID string // optional
	ReviewID       string // optional
	Status         string
	Message        string
	Sent           bool // stamps sent_at when true
}
