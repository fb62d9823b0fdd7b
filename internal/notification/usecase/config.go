package usecase

import (
	"context"

	"repupulse-api/internal/model"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/notification/repository"
)

func (uc *usecase) CreateConfig(ctx context.Context, sc model.Scope, ip notification.CreateConfigInput) (model.NotificationConfig, error) {
	if !notification.ValidNotificationType(ip.NotificationType) {
		return model.NotificationConfig{}, notification.ErrInvalidType
	}
	if !notification.ValidAlertType(ip.AlertType) {
		return model.NotificationConfig{}, notification.ErrInvalidAlertType
	}
	if ip.Recipient == "" {
		return model.NotificationConfig{}, notification.ErrRecipientRequired
	}

	cfg, err := uc.repo.CreateConfig(ctx, sc, repository.CreateConfigOptions{
		NotificationType: ip.NotificationType,
		Recipient:        ip.Recipient,
		AlertType:        ip.AlertType,
		IsActive:         ip.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.CreateConfig.CreateConfig: %v", err)
		return model.NotificationConfig{}, err
	}

	return cfg, nil
}

func (uc *usecase) UpdateConfig(ctx context.Context, sc model.Scope, ip notification.UpdateConfigInput) (model.NotificationConfig, error) {
	if ip.NotificationType != nil && !notification.ValidNotificationType(*ip.NotificationType) {
		return model.NotificationConfig{}, notification.ErrInvalidType
	}
	if ip.AlertType != nil && !notification.ValidAlertType(*ip.AlertType) {
		return model.NotificationConfig{}, notification.ErrInvalidAlertType
	}
	if ip.Recipient != nil && *ip.Recipient == "" {
		return model.NotificationConfig{}, notification.ErrRecipientRequired
	}

	cfg, err := uc.repo.UpdateConfig(ctx, sc, repository.UpdateConfigOptions{
		ID:               ip.ID,
		NotificationType: ip.NotificationType,
		Recipient:        ip.Recipient,
		AlertType:        ip.AlertType,
		IsActive:         ip.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UpdateConfig.UpdateConfig: %v", err)
		return model.NotificationConfig{}, err
	}

	return cfg, nil
}

func (uc *usecase) DeleteConfig(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteConfig(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.DeleteConfig.DeleteConfig: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) ListConfigs(ctx context.Context, sc model.Scope) ([]model.NotificationConfig, error) {
	configs, err := uc.repo.ListConfigs(ctx, sc, false)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ListConfigs.ListConfigs: %v", err)
		return nil, err
	}

	return configs, nil
}

func (uc *usecase) ListLogs(ctx context.Context, sc model.Scope, limit int) ([]model.NotificationLog, error) {
	if limit <= 0 {
		limit = notification.DefaultLogListLimit
	}

	logs, err := uc.repo.ListLogs(ctx, sc, limit)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ListLogs.ListLogs: %v", err)
		return nil, err
	}

	return logs, nil
}

func (uc *usecase) Stats(ctx context.Context, sc model.Scope) (model.NotificationStats, error) {
	stats, err := uc.repo.LogStats(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Stats.LogStats: %v", err)
		return model.NotificationStats{}, err
	}

	return stats, nil
}
