package email

import (
	"context"
	"log/slog"
)

// LogSender implements Sender for environments without email infrastructure.
// It writes the would-be message to the operator console and reports success,
// so form handlers can be exercised end to end without a live transport.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates the offline fallback sender.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log}
}

// Send logs the message and reports simulated delivery. One log entry is
// produced per message.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "would send email",
		slog.String("from", msg.From()),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}
