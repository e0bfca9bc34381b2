package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender is the outbound delivery capability. Implementations hand a
// plain-text message to a transport and report any delivery error.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single plain-text notification destined for one recipient.
// FromName and FromEmail are optional; the Dispatcher fills in the site's
// default sender identity when they are left empty.
type Message struct {
	To        string
	Subject   string
	Text      string
	FromName  string
	FromEmail string
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the message has a deliverable recipient and content.
func (m Message) Validate() error {
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}

// From renders the sender identity as a single address header value.
func (m Message) From() string {
	if m.FromName == "" {
		return m.FromEmail
	}
	return fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail)
}
