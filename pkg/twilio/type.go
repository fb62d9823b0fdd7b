package twilio

import (
	"net/http"

	"repupulse-api/pkg/log"
)

type twilioImpl struct {
	l          log.Logger
	accountSID string
	authToken  string
	fromNumber string
	client     *http.Client
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
