package credential

import (
	"context"

	"repupulse-api/internal/model"
)

// Store hands out decrypted credential values. Lookup follows the comma-ok
// idiom so callers can treat a missing key as "run in sample mode" rather
// than an error.
//
//go:generate mockery --name Store
type Store interface {
	Lookup(ctx context.Context, sc model.Scope, platformName, keyName string) (string, bool)
	Save(ctx context.Context, sc model.Scope, ip SaveInput) (model.Credential, error)
	List(ctx context.Context, sc model.Scope, platformName string) ([]model.Credential, error)
	Delete(ctx context.Context, sc model.Scope, platformName, keyName string) error
}
