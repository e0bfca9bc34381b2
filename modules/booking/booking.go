// Package booking handles "Play With Rescued Horses" session bookings:
// validate the submission, enforce the weekend-only schedule, simulate the
// payment, and send both the operations summary and the guest receipt.
package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/thehorseproject/website/pkg/validator"
)

const dateLayout = "2006-01-02"

// dayRestrictionMessage is the fixed explanation shown when a booking date
// falls outside the open days.
const dayRestrictionMessage = "Sessions are only available on Friday, Saturday, and Sunday."

// Request is the raw booking submission. Guests and totalAmount stay strings
// at the binding layer so malformed numbers fall back to defaults instead of
// rejecting the whole submission (deliberate policy, see DESIGN.md).
type Request struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	Date        string `form:"date"`
	Guests      string `form:"guests"`
	TotalAmount string `form:"totalAmount"`
}

// Submission is the parsed booking, echoed back to the client on validation
// failure.
type Submission struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"`
	Guests      int     `json:"guests"`
	TotalAmount float64 `json:"totalAmount"`
}

// parse coerces the numeric fields. Guest count falls back to 1 and the
// total amount to 0 when the value is missing or unparseable.
func parse(req Request) Submission {
	guests, err := strconv.Atoi(strings.TrimSpace(req.Guests))
	if err != nil || guests == 0 {
		guests = 1
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.TotalAmount), 64)
	if err != nil {
		amount = 0
	}

	return Submission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Guests:      guests,
		TotalAmount: amount,
	}
}

func (s Submission) validate() error {
	return validator.Apply(
		validator.Required("name", s.Name).Msg("Name is required"),
		validator.Required("email", s.Email).Msg("Email is required"),
		validator.ValidEmail("email", s.Email).Msg("Please enter a valid email address"),
		validator.Required("phone", s.Phone).Msg("Phone number is required"),
		validator.Required("date", s.Date).Msg("Please choose a date"),
		validator.ValidDate("date", s.Date, dateLayout).Msg("Please enter a valid date"),
	)
}

// allowedDay reports whether the date's UTC day-of-week is Friday, Saturday
// or Sunday. Runs only after schema validation, so the date is parseable.
func allowedDay(date string) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
