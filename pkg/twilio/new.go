package twilio

import (
	"errors"
	"net/http"
	"time"

	"repupulse-api/pkg/log"
)

var errCredentialsRequired = errors.New("twilio: account sid and auth token required")

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

func New(l log.Logger, accountSID, authToken, fromNumber string) (ITwilio, error) {
	if accountSID == "" || authToken == "" {
		return nil, errCredentialsRequired
	}

	return &twilioImpl{
		l:          l,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     newHTTPClient(DefaultTimeout),
	}, nil
}
