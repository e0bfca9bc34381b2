// Package contact handles the website contact form: validate the submission
// and notify the operations inbox.
package contact

import (
	"github.com/thehorseproject/website/pkg/validator"
)

// Request is a contact form submission. Phone is optional.
type Request struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone,omitempty"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

func (r Request) validate() error {
	return validator.Apply(
		validator.Required("name", r.Name).Msg("Name is required"),
		validator.Required("email", r.Email).Msg("Email is required"),
		validator.ValidEmail("email", r.Email).Msg("Please enter a valid email address"),
		validator.Required("subject", r.Subject).Msg("Subject is required"),
		validator.Required("message", r.Message).Msg("Message is required"),
	)
}
