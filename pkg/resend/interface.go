package resend

import "context"

// IResend sends transactional email through the Resend HTTP API.
type IResend interface {
	Send(ctx context.Context, email Email) error
	Close() error
}
