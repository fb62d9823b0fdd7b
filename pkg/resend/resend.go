package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (r *resendImpl) Send(ctx context.Context, email Email) error {
	if email.From == "" {
		email.From = r.from
	}
	if len(email.To) == 0 {
		return fmt.Errorf("resend: no recipients")
	}

	jsonData, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend: %s (%d)", apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("resend: unexpected status %d", resp.StatusCode)
	}

	var sent sendResponse
	if err := json.Unmarshal(body, &sent); err == nil && sent.ID != "" && r.l != nil {
		r.l.Debugf(ctx, "pkg.resend.Send: delivered id=%s", sent.ID)
	}

	return nil
}

func (r *resendImpl) Close() error {
	if r.client != nil {
		r.client.CloseIdleConnections()
	}
	return nil
}
