package resend

import "time"

const (
	apiURL = "https://api.resend.com/emails"

	DefaultTimeout = 30 * time.Second
)
