package email

import (
	"context"
	"log/slog"
)

// Dispatcher delivers notification messages through the injected Sender and
// absorbs every transport failure. Callers receive a boolean outcome, never
// an error: a visitor who submitted a valid form must not see a failure
// caused by email infrastructure.
type Dispatcher struct {
	sender      Sender
	log         *slog.Logger
	senderName  string
	senderEmail string
}

// NewDispatcher wires a Dispatcher. A nil sender falls back to the logging
// sender, which simulates delivery for local development.
func NewDispatcher(sender Sender, cfg Config, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	if sender == nil {
		sender = NewLogSender(log)
	}
	return &Dispatcher{
		sender:      sender,
		log:         log,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
	}
}

// Dispatch attempts delivery of one message and reports the outcome.
// The default sender identity is applied unless the message overrides it.
// Failures are logged and swallowed.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) bool {
	if msg.FromName == "" {
		msg.FromName = d.senderName
	}
	if msg.FromEmail == "" {
		msg.FromEmail = d.senderEmail
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		d.log.ErrorContext(ctx, "failed to send email notification",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)
		return false
	}
	return true
}
