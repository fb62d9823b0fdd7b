package usecase

import (
	"context"
	"fmt"

	"repupulse-api/internal/model"
	"repupulse-api/internal/notification"
	"repupulse-api/internal/notification/repository"
)

func (uc *usecase) RunCompany(ctx context.Context, sc model.Scope) (int, error) {
	configs, err := uc.repo.ListConfigs(ctx, sc, true)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.RunCompany.ListConfigs: %v", err)
		return 0, err
	}
	if len(configs) == 0 {
		return 0, nil
	}

	since := uc.clock().Add(-uc.window)
	recent, err := uc.reviewUC.Recent(ctx, sc, since)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.RunCompany.Recent: %v", err)
		return 0, err
	}

	// Nothing fetched inside the window means nothing to announce. No log
	// rows are written for a quiet window.
	if len(recent) == 0 {
		return 0, nil
	}

	negativeCount := 0
	var ratingSum float64
	for _, rv := range recent {
		ratingSum += rv.Rating
		if rv.Rating < uc.negativeThreshold {
			negativeCount++
		}
	}
	averageRating := ratingSum / float64(len(recent))

	// One message per window batch; every firing config receives it. The log
	// row references the newest review in the window.
	message := renderMessage(negativeCount, averageRating)
	newestReviewID := recent[0].ID

	processed := 0
	for _, cfg := range configs {
		if !uc.shouldNotify(cfg, recent, negativeCount) {
			continue
		}

		uc.deliver(ctx, sc, cfg, message, newestReviewID)
		processed++
	}

	return processed, nil
}

func (uc *usecase) RunAll(ctx context.Context) (notification.RunSummary, error) {
	companies, err := uc.repo.Companies(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.RunAll.Companies: %v", err)
		return notification.RunSummary{}, err
	}

	summary := notification.RunSummary{Companies: len(companies)}
	for _, companyID := range companies {
		processed, err := uc.RunCompany(ctx, model.Scope{CompanyID: companyID})
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.RunAll.RunCompany: company %s: %v", companyID, err)
			summary.Failures = append(summary.Failures, companyID)
			continue
		}
		summary.ProcessedCount += processed
	}

	return summary, nil
}

func (uc *usecase) Test(ctx context.Context, sc model.Scope, configID string) (model.NotificationLog, error) {
	configs, err := uc.repo.ListConfigs(ctx, sc, false)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Test.ListConfigs: %v", err)
		return model.NotificationLog{}, err
	}

	var cfg *model.NotificationConfig
	for i := range configs {
		if configs[i].ID == configID {
			cfg = &configs[i]
			break
		}
	}
	if cfg == nil {
		return model.NotificationLog{}, notification.ErrConfigNotFound
	}

	message := "This is a test notification from RepuPulse."
	return uc.deliver(ctx, sc, *cfg, message, ""), nil
}

// shouldNotify decides whether one subscription fires for this window.
// rating_change and spike subscriptions never fire yet: both need a
// previous-window baseline the pipeline does not keep.
func (uc *usecase) shouldNotify(cfg model.NotificationConfig, recent []model.Review, negativeCount int) bool {
	switch cfg.AlertType {
	case model.AlertTypeAll:
		return len(recent) > 0
	case model.AlertTypeNegativeReview:
		return negativeCount > 0
	case model.AlertTypeRatingChange, model.AlertTypeSpike:
		return false
	default:
		return false
	}
}

// renderMessage builds the one message for a window batch. Any negative
// review in the window switches the whole batch to the alert wording,
// regardless of which alert type a given subscription carries.
func renderMessage(negativeCount int, averageRating float64) string {
	if negativeCount > 0 {
		return fmt.Sprintf("Alert: %d negative review(s) detected. Average rating: %.1f/5", negativeCount, averageRating)
	}

	return fmt.Sprintf("Update: New reviews received. Average rating: %.1f/5", averageRating)
}

// deliver sends through the subscription's channel and records the outcome.
// A failed or unavailable channel logs the row as pending rather than
// failed, keeping it visible for a manual retry sweep.
func (uc *usecase) deliver(ctx context.Context, sc model.Scope, cfg model.NotificationConfig, message, reviewID string) model.NotificationLog {
	sent := false

	sender, ok := uc.senders[cfg.NotificationType]
	if !ok {
		uc.l.Warnf(ctx, "internal.notification.usecase.deliver: no sender for channel %s", cfg.NotificationType)
	} else if err := sender.Send(ctx, cfg.Recipient, message); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.deliver.Send: config %s: %v", cfg.ID, err)
	} else {
		sent = true
	}

	status := model.NotificationStatusPending
	if sent {
		status = model.NotificationStatusSent
	}

	logEntry, err := uc.repo.InsertLog(ctx, sc, repository.InsertLogOptions{
		NotificationID: cfg.ID,
		ReviewID:       reviewID,
		Status:         status,
		Message:        message,
		Sent:           sent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.deliver.InsertLog: %v", err)
		return model.NotificationLog{}
	}

	return logEntry
}
