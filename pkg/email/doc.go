// Package email provides a provider-agnostic capability for sending the
// site's plain-text notification emails.
//
// The package is built around the Sender interface with three
// implementations selected by configuration at startup:
//   - PostmarkSender for production delivery through Postmark
//   - SESSender for production delivery through AWS SES v2
//   - LogSender for local development (logs the message, reports success)
//
// Form handlers never talk to a Sender directly; they go through the
// Dispatcher, which applies the default sender identity and converts any
// transport error into a logged boolean failure. Delivery problems are an
// operator concern, not a visitor-facing one.
//
// Basic usage:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	sender, err := email.NewSender(ctx, cfg, log)
//	if err != nil {
//		// invalid transport configuration, refuse to start
//	}
//	dispatcher := email.NewDispatcher(sender, cfg, log)
//
//	delivered := dispatcher.Dispatch(ctx, email.Message{
//		To:      "thehorseprojectsb@gmail.com",
//		Subject: "Contact: Tour - Jane Doe",
//		Text:    body,
//	})
//
// With EMAIL_PROVIDER unset (or "log") no credentials are needed and every
// dispatch is a simulated delivery, so the form pipeline stays testable on a
// laptop without email infrastructure.
package email
