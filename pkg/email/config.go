package email

import (
	"context"
	"fmt"
	"log/slog"
)

// Provider selects the live transport implementation at startup.
type Provider string

const (
	// ProviderLog is the offline fallback: messages are logged to the
	// operator console and treated as delivered.
	ProviderLog Provider = "log"
	// ProviderPostmark delivers through Postmark's transactional API.
	ProviderPostmark Provider = "postmark"
	// ProviderSES delivers through AWS SES v2.
	ProviderSES Provider = "ses"
)

// Config holds email transport configuration. Provider defaults to the
// logging fallback so local development never requires email credentials.
// SenderName and SenderEmail establish the default sender identity for all
// outbound notifications.
type Config struct {
	Provider    Provider `env:"EMAIL_PROVIDER" envDefault:"log"`
	SenderName  string   `env:"EMAIL_SENDER_NAME" envDefault:"The Horse Project Website"`
	SenderEmail string   `env:"EMAIL_SENDER_EMAIL" envDefault:"website@thehorseprojectsantabarbara.com"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SESAccessKey string `env:"SES_ACCESS_KEY"`
	SESSecretKey string `env:"SES_SECRET_KEY"`
	SESRegion    string `env:"SES_REGION" envDefault:"us-east-1"`
}

// NewSender builds the Sender implementation selected by cfg.Provider.
// An empty provider falls back to the logging sender.
func NewSender(ctx context.Context, cfg Config, log *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case ProviderLog, "":
		return NewLogSender(log), nil
	case ProviderPostmark:
		return NewPostmarkSender(cfg)
	case ProviderSES:
		return NewSESSender(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
