package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Recipient records a notification recipient under the key "recipient".
func Recipient(to string) slog.Attr {
	return slog.String("recipient", to)
}
