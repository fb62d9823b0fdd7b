package usecase

import (
	"context"
	"errors"

	"repupulse-api/internal/credential"
	"repupulse-api/internal/credential/repository"
	"repupulse-api/internal/model"
)

func (s *store) Lookup(ctx context.Context, sc model.Scope, platformName, keyName string) (string, bool) {
	c, err := s.repo.GetOne(ctx, sc, platformName, keyName)
	if err != nil {
		if !errors.Is(err, credential.ErrKeyNotFound) {
			s.l.Errorf(ctx, "internal.credential.usecase.Lookup.GetOne: %v", err)
		}
		return "", false
	}

	plain, err := s.enc.Decrypt(c.Value)
	if err != nil {
		s.l.Errorf(ctx, "internal.credential.usecase.Lookup.Decrypt: %v", err)
		return "", false
	}

	return plain, plain != ""
}

func (s *store) Save(ctx context.Context, sc model.Scope, ip credential.SaveInput) (model.Credential, error) {
	if ip.PlatformName == "" {
		return model.Credential{}, credential.ErrEmptyPlatform
	}
	if ip.KeyName == "" {
		return model.Credential{}, credential.ErrEmptyKeyName
	}
	if ip.Value == "" {
		return model.Credential{}, credential.ErrEmptyValue
	}

	encrypted, err := s.enc.Encrypt(ip.Value)
	if err != nil {
		s.l.Errorf(ctx, "internal.credential.usecase.Save.Encrypt: %v", err)
		return model.Credential{}, err
	}

	c, err := s.repo.Upsert(ctx, sc, repository.UpsertOptions{
		PlatformName: ip.PlatformName,
		KeyName:      ip.KeyName,
		Value:        encrypted,
	})
	if err != nil {
		s.l.Errorf(ctx, "internal.credential.usecase.Save.Upsert: %v", err)
		return model.Credential{}, err
	}

	// Never hand the ciphertext back out.
	c.Value = ""

	return c, nil
}

func (s *store) List(ctx context.Context, sc model.Scope, platformName string) ([]model.Credential, error) {
	creds, err := s.repo.List(ctx, sc, platformName)
	if err != nil {
		s.l.Errorf(ctx, "internal.credential.usecase.List.List: %v", err)
		return nil, err
	}

	for i := range creds {
		creds[i].Value = ""
	}

	return creds, nil
}

func (s *store) Delete(ctx context.Context, sc model.Scope, platformName, keyName string) error {
	if err := s.repo.Delete(ctx, sc, platformName, keyName); err != nil {
		if !errors.Is(err, credential.ErrKeyNotFound) {
			s.l.Errorf(ctx, "internal.credential.usecase.Delete.Delete: %v", err)
		}
		return err
	}

	return nil
}
