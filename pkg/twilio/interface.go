package twilio

import "context"

// ITwilio sends SMS and WhatsApp messages through the Twilio REST API.
type ITwilio interface {
	SendSMS(ctx context.Context, to, body string) error
	SendWhatsApp(ctx context.Context, to, body string) error
	Close() error
}
