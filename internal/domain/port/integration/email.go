package integration

import "context"

// EmailSender delivers fire-and-forget notifications. Send failures are
// logged by callers and never abort the triggering operation.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
