package resend

import (
	"net/http"

	"repupulse-api/pkg/log"
)

// Email is one outbound message. HTML takes precedence over Text when both
// are set.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendImpl struct {
	l      log.Logger
	apiKey string
	from   string
	client *http.Client
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
