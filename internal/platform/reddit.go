package platform

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"repupulse-api/internal/model"
	pkgLog "repupulse-api/pkg/log"
)

const (
	redditTokenURL  = "https://www.reddit.com/api/v1/access_token"
	redditOAuthBase = "https://oauth.reddit.com"
	redditUserAgent = "ReviewAggregator/1.0"
)

// RedditAdapter reads recent posts from a subreddit as review-like records.
// The pseudo-rating is the post score divided by 100, so it is not bounded
// to the 1-5 band other platforms use.
type RedditAdapter struct {
	l            pkgLog.Logger
	clientID     string
	clientSecret string
	client       *http.Client
}

var _ Adapter = (*RedditAdapter)(nil)

// NewRedditAdapter builds a Reddit adapter. Empty credentials are allowed;
// the adapter then serves sample data.
func NewRedditAdapter(l pkgLog.Logger, clientID, clientSecret string, timeout time.Duration) *RedditAdapter {
	return &RedditAdapter{
		l:            l,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       newHTTPClient(timeout),
	}
}

func (a *RedditAdapter) Name() string { return model.PlatformReddit }

func (a *RedditAdapter) configured() bool {
	return a.clientID != "" && a.clientSecret != ""
}

type redditPost struct {
	Data struct {
		ID         string  `json:"id"`
		Author     string  `json:"author"`
		Title      string  `json:"title"`
		Selftext   string  `json:"selftext"`
		Score      float64 `json:"score"`
		Permalink  string  `json:"permalink"`
		CreatedUTC float64 `json:"created_utc"`
	} `json:"data"`
}

type redditListing struct {
	Data struct {
		Children []redditPost `json:"children"`
		After    string       `json:"after"`
	} `json:"data"`
}

func (a *RedditAdapter) FetchReviews(ctx context.Context, subreddit string, limit int) FetchResult {
	limit = normalizeLimit(limit)

	if !a.configured() {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews: API credentials not configured, returning sample data")
		return SampleResponse(model.PlatformReddit, limit)
	}

	token, err := a.accessToken(ctx)
	if err != nil {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews: %v, returning sample data", err)
		return SampleResponse(model.PlatformReddit, limit)
	}

	endpoint := fmt.Sprintf("%s/r/%s/new?limit=%d", redditOAuthBase, url.PathEscape(subreddit), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews.newRequest: %v, returning sample data", err)
		return SampleResponse(model.PlatformReddit, limit)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews.do: %v, returning sample data", err)
		return SampleResponse(model.PlatformReddit, limit)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews: reddit API returned status %d, returning sample data", resp.StatusCode)
		return SampleResponse(model.PlatformReddit, limit)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		a.l.Warnf(ctx, "internal.platform.reddit.FetchReviews.decode: %v, returning sample data", err)
		return SampleResponse(model.PlatformReddit, limit)
	}

	reviews := make([]model.Review, 0, len(listing.Data.Children))
	for _, post := range listing.Data.Children {
		author := post.Data.Author
		if author == "" {
			author = "Anonymous"
		}
		content := post.Data.Title
		if post.Data.Selftext != "" {
			content += "\n" + post.Data.Selftext
		}

		reviews = append(reviews, model.Review{
			ReviewID:     post.Data.ID,
			Author:       author,
			Content:      content,
			Rating:       post.Data.Score / 100,
			URL:          "https://reddit.com" + post.Data.Permalink,
			ReviewedAt:   time.Unix(int64(post.Data.CreatedUTC), 0),
			PlatformName: model.PlatformReddit,
		})
	}

	return FetchResult{
		Reviews:       reviews,
		TotalCount:    len(reviews),
		HasMore:       listing.Data.After != "",
		NextPageToken: listing.Data.After,
		Source:        SourceLive,
	}
}

func (a *RedditAdapter) ValidateConnection(ctx context.Context) bool {
	if !a.configured() {
		return false
	}

	_, err := a.accessToken(ctx)
	return err == nil
}

// accessToken exchanges the client credentials for an OAuth bearer token.
func (a *RedditAdapter) accessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(a.clientID + ":" + a.clientSecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, redditTokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("new token request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("User-Agent", redditUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned empty token")
	}

	return body.AccessToken, nil
}
