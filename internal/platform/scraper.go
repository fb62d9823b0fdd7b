package platform

import (
	"context"

	pkgLog "repupulse-api/pkg/log"
)

// ScraperAdapter stands in for platforms that would require web scraping
// (glassdoor, ambitionbox, trustpilot, g2, yelp). There is no live
// implementation: FetchReviews always serves sample data and
// ValidateConnection always reports false. This is deliberate scope
// limiting, not a fault path.
type ScraperAdapter struct {
	l            pkgLog.Logger
	platformName string
}

var _ Adapter = (*ScraperAdapter)(nil)

// NewScraperAdapter builds a sample-only adapter for the named platform.
func NewScraperAdapter(l pkgLog.Logger, platformName string) *ScraperAdapter {
	return &ScraperAdapter{
		l:            l,
		platformName: platformName,
	}
}

func (a *ScraperAdapter) Name() string { return a.platformName }

func (a *ScraperAdapter) FetchReviews(ctx context.Context, _ string, limit int) FetchResult {
	a.l.Warnf(ctx, "internal.platform.scraper.FetchReviews: %s requires web scraping, returning sample data", a.platformName)
	return SampleResponse(a.platformName, normalizeLimit(limit))
}

func (a *ScraperAdapter) ValidateConnection(ctx context.Context) bool {
	a.l.Warnf(ctx, "internal.platform.scraper.ValidateConnection: %s validation not available", a.platformName)
	return false
}
