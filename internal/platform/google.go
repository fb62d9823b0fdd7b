package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"repupulse-api/internal/model"
	pkgLog "repupulse-api/pkg/log"
)

const googleAPIBase = "https://www.googleapis.com/mybusiness/v4"

// GoogleAdapter fetches business reviews from the Google My Business API.
// Star ratings arrive on the native 1-5 scale and are kept as-is.
type GoogleAdapter struct {
	l      pkgLog.Logger
	apiKey string
	client *http.Client
}

var _ Adapter = (*GoogleAdapter)(nil)

// NewGoogleAdapter builds a Google adapter. An empty apiKey is allowed; the
// adapter then serves sample data.
func NewGoogleAdapter(l pkgLog.Logger, apiKey string, timeout time.Duration) *GoogleAdapter {
	return &GoogleAdapter{
		l:      l,
		apiKey: apiKey,
		client: newHTTPClient(timeout),
	}
}

func (a *GoogleAdapter) Name() string { return model.PlatformGoogle }

type googleReview struct {
	Name       string `json:"name"`
	StarRating int    `json:"starRating"`
	Comment    string `json:"comment"`
	CreateTime string `json:"createTime"`
	Reviewer   struct {
		DisplayName string `json:"displayName"`
	} `json:"reviewer"`
	ReviewReply *struct {
		UpdateTime string `json:"updateTime"`
	} `json:"reviewReply"`
}

type googleReviewsResponse struct {
	Reviews       []googleReview `json:"reviews"`
	NextPageToken string         `json:"nextPageToken"`
}

func (a *GoogleAdapter) FetchReviews(ctx context.Context, businessID string, limit int) FetchResult {
	limit = normalizeLimit(limit)

	if a.apiKey == "" {
		a.l.Warnf(ctx, "internal.platform.google.FetchReviews: API key not configured, returning sample data")
		return SampleResponse(model.PlatformGoogle, limit)
	}

	endpoint := fmt.Sprintf("%s/accounts/-/locations/%s/reviews?pageSize=%d&key=%s",
		googleAPIBase, url.PathEscape(businessID), limit, url.QueryEscape(a.apiKey))

	var data googleReviewsResponse
	if err := a.getJSON(ctx, endpoint, &data); err != nil {
		a.l.Warnf(ctx, "internal.platform.google.FetchReviews: %v, returning sample data", err)
		return SampleResponse(model.PlatformGoogle, limit)
	}

	reviews := make([]model.Review, 0, len(data.Reviews))
	for _, gr := range data.Reviews {
		reviewedAt, _ := time.Parse(time.RFC3339, gr.CreateTime)

		// Review names look like accounts/x/locations/y/reviews/<id>.
		parts := strings.Split(gr.Name, "/")
		id := parts[len(parts)-1]

		permalink := ""
		if gr.ReviewReply != nil && gr.ReviewReply.UpdateTime != "" {
			permalink = "https://maps.google.com"
		}

		reviews = append(reviews, model.Review{
			ReviewID:     id,
			Author:       gr.Reviewer.DisplayName,
			Content:      gr.Comment,
			Rating:       float64(gr.StarRating),
			URL:          permalink,
			ReviewedAt:   reviewedAt,
			PlatformName: model.PlatformGoogle,
		})
	}

	return FetchResult{
		Reviews:       reviews,
		TotalCount:    len(reviews),
		HasMore:       data.NextPageToken != "",
		NextPageToken: data.NextPageToken,
		Source:        SourceLive,
	}
}

func (a *GoogleAdapter) ValidateConnection(ctx context.Context) bool {
	if a.apiKey == "" {
		return false
	}

	endpoint := fmt.Sprintf("%s/accounts?key=%s", googleAPIBase, url.QueryEscape(a.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (a *GoogleAdapter) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
