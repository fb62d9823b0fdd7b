package usecase

import (
	"context"
	"errors"
	"testing"

	"repupulse-api/internal/model"
	"repupulse-api/internal/notification"
)

func strPtr(s string) *string { return &s }

func TestCreateConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   notification.CreateConfigInput
		wantErr error
	}{
		{
			name: "valid email config",
			input: notification.CreateConfigInput{
				NotificationType: model.NotificationTypeEmail,
				Recipient:        "owner@example.com",
				AlertType:        model.AlertTypeAll,
				IsActive:         true,
			},
		},
		{
			name: "unknown channel",
			input: notification.CreateConfigInput{
				NotificationType: "pigeon",
				Recipient:        "owner@example.com",
				AlertType:        model.AlertTypeAll,
			},
			wantErr: notification.ErrInvalidType,
		},
		{
			name: "unknown alert type",
			input: notification.CreateConfigInput{
				NotificationType: model.NotificationTypeSMS,
				Recipient:        "+15550001111",
				AlertType:        "everything",
			},
			wantErr: notification.ErrInvalidAlertType,
		},
		{
			name: "missing recipient",
			input: notification.CreateConfigInput{
				NotificationType: model.NotificationTypeWhatsApp,
				AlertType:        model.AlertTypeNegativeReview,
			},
			wantErr: notification.ErrRecipientRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUsecase(repo, &fakeReviewUC{}, &fakeSender{})

			cfg, err := uc.CreateConfig(context.Background(), model.Scope{CompanyID: "c1"}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateConfig() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if len(repo.configs) != 0 {
					t.Error("invalid input reached the repository")
				}
				return
			}
			if cfg.Recipient != tt.input.Recipient {
				t.Errorf("Recipient = %q, want %q", cfg.Recipient, tt.input.Recipient)
			}
		})
	}
}

func TestUpdateConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   notification.UpdateConfigInput
		wantErr error
	}{
		{
			name:    "bad channel pointer",
			input:   notification.UpdateConfigInput{ID: "cfg-1", NotificationType: strPtr("fax")},
			wantErr: notification.ErrInvalidType,
		},
		{
			name:    "bad alert type pointer",
			input:   notification.UpdateConfigInput{ID: "cfg-1", AlertType: strPtr("loud")},
			wantErr: notification.ErrInvalidAlertType,
		},
		{
			name:    "empty recipient pointer",
			input:   notification.UpdateConfigInput{ID: "cfg-1", Recipient: strPtr("")},
			wantErr: notification.ErrRecipientRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(&fakeRepo{}, &fakeReviewUC{}, &fakeSender{})

			_, err := uc.UpdateConfig(context.Background(), model.Scope{CompanyID: "c1"}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
