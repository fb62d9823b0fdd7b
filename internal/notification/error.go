package notification

import "errors"

var (
	ErrConfigNotFound     = errors.New("notification config not found")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrInvalidType        = errors.New("invalid notification type")
	ErrInvalidAlertType   = errors.New("invalid alert type")
	ErrRecipientRequired  = errors.New("recipient required")
	ErrUnsupportedChannel = errors.New("unsupported notification channel")
)
