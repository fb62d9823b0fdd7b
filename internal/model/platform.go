package model

import (
	"strings"
	"time"
)

// Known platform identifiers (lowercase, closed set).
const (
	PlatformGoogle      = "google"
	PlatformReddit      = "reddit"
	PlatformTwitter     = "twitter"
	PlatformGlassdoor   = "glassdoor"
	PlatformAmbitionBox = "ambitionbox"
	PlatformTrustpilot  = "trustpilot"
	PlatformG2          = "g2"
	PlatformYelp        = "yelp"
)

// KnownPlatforms lists every platform the aggregator can dispatch to.
var KnownPlatforms = []string{
	PlatformGoogle,
	PlatformReddit,
	PlatformTwitter,
	PlatformGlassdoor,
	PlatformAmbitionBox,
	PlatformTrustpilot,
	PlatformG2,
	PlatformYelp,
}

// NormalizePlatformName lowercases a platform name for dispatch.
func NormalizePlatformName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PlatformConfig is one company's connection to one external platform.
type PlatformConfig struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	PlatformName string    `json:"platform_name"`
	BusinessID   string    `json:"business_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
