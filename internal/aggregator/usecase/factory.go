package usecase

import (
	"context"

	"repupulse-api/internal/model"
	"repupulse-api/internal/platform"
)

// buildAdapter assembles the adapter for one (company, platform) pair from
// whatever credentials the store holds. Missing keys are not an error: an
// adapter built with empty credentials degrades to sample data on fetch.
func (uc *usecase) buildAdapter(ctx context.Context, sc model.Scope, platformName string) platform.Adapter {
	timeout := uc.cfg.FetchTimeout

	switch model.NormalizePlatformName(platformName) {
	case model.PlatformGoogle:
		apiKey, _ := uc.creds.Lookup(ctx, sc, model.PlatformGoogle, model.KeyNameAPIKey)
		return platform.NewGoogleAdapter(uc.l, apiKey, timeout)

	case model.PlatformReddit:
		clientID, _ := uc.creds.Lookup(ctx, sc, model.PlatformReddit, model.KeyNameClientID)
		clientSecret, _ := uc.creds.Lookup(ctx, sc, model.PlatformReddit, model.KeyNameClientSecret)
		return platform.NewRedditAdapter(uc.l, clientID, clientSecret, timeout)

	case model.PlatformTwitter:
		bearer, _ := uc.creds.Lookup(ctx, sc, model.PlatformTwitter, model.KeyNameBearerToken)
		return platform.NewTwitterAdapter(uc.l, bearer, timeout)

	case model.PlatformGlassdoor, model.PlatformAmbitionBox,
		model.PlatformTrustpilot, model.PlatformG2, model.PlatformYelp:
		return platform.NewScraperAdapter(uc.l, model.NormalizePlatformName(platformName))

	default:
		return nil
	}
}
