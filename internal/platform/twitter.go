package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"repupulse-api/internal/model"
	pkgLog "repupulse-api/pkg/log"
)

const twitterSearchURL = "https://api.twitter.com/2/tweets/search/recent"

// TwitterAdapter searches recent tweets matching a query. The pseudo-rating
// is an engagement heuristic: like count divided by 10.
type TwitterAdapter struct {
	l           pkgLog.Logger
	bearerToken string
	client      *http.Client
}

var _ Adapter = (*TwitterAdapter)(nil)

// NewTwitterAdapter builds a Twitter adapter. An empty bearer token is
// allowed; the adapter then serves sample data.
func NewTwitterAdapter(l pkgLog.Logger, bearerToken string, timeout time.Duration) *TwitterAdapter {
	return &TwitterAdapter{
		l:           l,
		bearerToken: bearerToken,
		client:      newHTTPClient(timeout),
	}
}

func (a *TwitterAdapter) Name() string { return model.PlatformTwitter }

type twitterSearchResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			LikeCount float64 `json:"like_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
}

func (a *TwitterAdapter) FetchReviews(ctx context.Context, query string, limit int) FetchResult {
	limit = normalizeLimit(limit)

	if a.bearerToken == "" {
		a.l.Warnf(ctx, "internal.platform.twitter.FetchReviews: API token not configured, returning sample data")
		return SampleResponse(model.PlatformTwitter, limit)
	}

	endpoint := fmt.Sprintf(
		"%s?query=%s&max_results=%d&tweet.fields=created_at,author_id,public_metrics&expansions=author_id&user.fields=username",
		twitterSearchURL, url.QueryEscape(query), limit)

	var data twitterSearchResponse
	if err := a.getJSON(ctx, endpoint, &data); err != nil {
		a.l.Warnf(ctx, "internal.platform.twitter.FetchReviews: %v, returning sample data", err)
		return SampleResponse(model.PlatformTwitter, limit)
	}

	reviews := make([]model.Review, 0, len(data.Data))
	for i, tweet := range data.Data {
		author := "Unknown"
		if i < len(data.Includes.Users) {
			author = data.Includes.Users[i].Username
		}
		reviewedAt, _ := time.Parse(time.RFC3339, tweet.CreatedAt)

		reviews = append(reviews, model.Review{
			ReviewID:     tweet.ID,
			Author:       author,
			Content:      tweet.Text,
			Rating:       tweet.PublicMetrics.LikeCount / 10,
			URL:          "https://twitter.com/i/web/status/" + tweet.ID,
			ReviewedAt:   reviewedAt,
			PlatformName: model.PlatformTwitter,
		})
	}

	return FetchResult{
		Reviews:       reviews,
		TotalCount:    data.Meta.ResultCount,
		HasMore:       data.Meta.NextToken != "",
		NextPageToken: data.Meta.NextToken,
		Source:        SourceLive,
	}
}

func (a *TwitterAdapter) ValidateConnection(ctx context.Context) bool {
	if a.bearerToken == "" {
		return false
	}

	endpoint := twitterSearchURL + "?query=test&max_results=10"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+a.bearerToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (a *TwitterAdapter) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.bearerToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("twitter API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
