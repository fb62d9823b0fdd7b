package usecase

import (
	"context"

	"repupulse-api/internal/model"
	"repupulse-api/pkg/log"
	"repupulse-api/pkg/resend"
	"repupulse-api/pkg/twilio"
)

// Sender delivers one rendered alert message to a subscription's recipient.
type Sender interface {
	Send(ctx context.Context, recipient, message string) error
}

// NewSenders builds the channel table from whichever provider clients are
// configured. A nil client leaves its channels out of the table, so those
// subscriptions log pending instead of reaching a half-built provider.
func NewSenders(l log.Logger, email resend.IResend, sms twilio.ITwilio) map[string]Sender {
	senders := make(map[string]Sender)

	if email != nil {
		senders[model.NotificationTypeEmail] = &emailSender{l: l, client: email}
	}
	if sms != nil {
		senders[model.NotificationTypeSMS] = &smsSender{l: l, client: sms}
		senders[model.NotificationTypeWhatsApp] = &whatsappSender{l: l, client: sms}
	}

	return senders
}

type emailSender struct {
	l      log.Logger
	client resend.IResend
}

func (s *emailSender) Send(ctx context.Context, recipient, message string) error {
	return s.client.Send(ctx, resend.Email{
		To:      []string{recipient},
		Subject: "Review alert",
		Text:    message,
	})
}

type smsSender struct {
	l      log.Logger
	client twilio.ITwilio
}

func (s *smsSender) Send(ctx context.Context, recipient, message string) error {
	return s.client.SendSMS(ctx, recipient, message)
}

type whatsappSender struct {
	l      log.Logger
	client twilio.ITwilio
}

func (s *whatsappSender) Send(ctx context.Context, recipient, message string) error {
	return s.client.SendWhatsApp(ctx, recipient, message)
}
