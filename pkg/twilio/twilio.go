package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func (t *twilioImpl) SendSMS(ctx context.Context, to, body string) error {
	return t.sendMessage(ctx, t.fromNumber, to, body)
}

func (t *twilioImpl) SendWhatsApp(ctx context.Context, to, body string) error {
	from := t.fromNumber
	if !strings.HasPrefix(from, whatsappPrefix) {
		from = whatsappPrefix + from
	}
	if !strings.HasPrefix(to, whatsappPrefix) {
		to = whatsappPrefix + to
	}

	return t.sendMessage(ctx, from, to, body)
}

func (t *twilioImpl) sendMessage(ctx context.Context, from, to, body string) error {
	if to == "" {
		return fmt.Errorf("twilio: no recipient")
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf(messagesURLTemplate, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio: %s (code %d)", apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("twilio: unexpected status %d", resp.StatusCode)
	}

	var msg messageResponse
	if err := json.Unmarshal(respBody, &msg); err == nil && msg.SID != "" && t.l != nil {
		t.l.Debugf(ctx, "pkg.twilio.sendMessage: queued sid=%s status=%s", msg.SID, msg.Status)
	}

	return nil
}

func (t *twilioImpl) Close() error {
	if t.client != nil {
		t.client.CloseIdleConnections()
	}
	return nil
}
