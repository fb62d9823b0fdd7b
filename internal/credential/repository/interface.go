package repository

import (
	"context"

	"repupulse-api/internal/model"
)

// Repository persists credential rows. Values arrive and leave encrypted;
// the store above this layer owns the cipher.
type Repository interface {
	GetOne(ctx context.Context, sc model.Scope, platformName, keyName string) (model.Credential, error)
	Upsert(ctx context.Context, sc model.Scope, opts UpsertOptions) (model.Credential, error)
	List(ctx context.Context, sc model.Scope, platformName string) ([]model.Credential, error)
	Delete(ctx context.Context, sc model.Scope, platformName, keyName string) error
}

type UpsertOptions struct {
	PlatformName string
	KeyName      string
	Value        string // already encrypted
}
