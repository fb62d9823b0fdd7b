package resend

import (
	"errors"
	"net/http"
	"time"

	"repupulse-api/pkg/log"
)

var errAPIKeyRequired = errors.New("resend: api key required")

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// New builds a Resend client. from is the default sender address used when
// an email does not carry its own.
func New(l log.Logger, apiKey, from string) (IResend, error) {
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	return &resendImpl{
		l:      l,
		apiKey: apiKey,
		from:   from,
		client: newHTTPClient(DefaultTimeout),
	}, nil
}
