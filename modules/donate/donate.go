// Package donate handles donation pledges for the Sanctuary Horse's Circle:
// validate the pledge and notify the operations inbox. No payment is
// collected here; the team follows up with the donor directly.
package donate

import (
	"strconv"
	"strings"

	"github.com/thehorseproject/website/pkg/validator"
)

var frequencies = []string{"one-time", "monthly"}

// Request is a raw donation pledge submission.
type Request struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Amount    string `form:"amount"`
	Frequency string `form:"frequency"`
	CoverFees bool   `form:"coverFees"`
}

// Submission is the parsed pledge, echoed back on validation failure.
type Submission struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	CoverFees bool    `json:"coverFees"`
}

func parse(req Request) (Submission, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	return Submission{
		Name:      req.Name,
		Email:     req.Email,
		Amount:    amount,
		Frequency: req.Frequency,
		CoverFees: req.CoverFees,
	}, err == nil
}

func (s Submission) validate(amountParsed bool) error {
	return validator.Apply(
		validator.Required("name", s.Name).Msg("Name is required"),
		validator.ValidEmail("email", s.Email).Msg("Please enter a valid email address"),
		validator.Rule{
			Check: func() bool { return amountParsed },
			Err:   validator.ValidationError{Field: "amount", Message: "Please enter a valid amount"},
		},
		validator.MinNum("amount", s.Amount, 1).Msg("Minimum donation is $1"),
		validator.MaxNum("amount", s.Amount, 10000).Msg("Maximum donation is $10,000"),
		validator.OneOf("frequency", s.Frequency, frequencies).Msg("Please select a donation frequency"),
	)
}
