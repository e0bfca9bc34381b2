// Package volunteer handles volunteer applications: validate the submission,
// including the selected shifts, and notify the volunteer coordinators.
package volunteer

import (
	"github.com/thehorseproject/website/pkg/validator"
)

// Shifts the sanctuary offers, in display order.
var shiftCodes = []string{"mon_am", "mon_pm", "thu_am", "fri_am", "sat_am", "sun_am"}

// Request is a volunteer application submission. Bio, orientation date and
// referral source are optional.
type Request struct {
	FirstName       string   `form:"firstName" json:"firstName"`
	LastName        string   `form:"lastName" json:"lastName"`
	Email           string   `form:"email" json:"email"`
	Phone           string   `form:"phone" json:"phone"`
	Bio             string   `form:"bio" json:"bio,omitempty"`
	Availability    []string `form:"availability" json:"availability"`
	OrientationDate string   `form:"orientationDate" json:"orientationDate,omitempty"`
	ReferralSource  string   `form:"referralSource" json:"referralSource,omitempty"`
}

func (r Request) validate() error {
	return validator.Apply(
		validator.Required("firstName", r.FirstName).Msg("First name is required"),
		validator.Required("lastName", r.LastName).Msg("Last name is required"),
		validator.ValidEmail("email", r.Email).Msg("Please enter a valid email address"),
		validator.MinLen("phone", r.Phone, 10).Msg("Phone number must be at least 10 digits"),
		validator.MaxLenOptional("bio", r.Bio, 500).Msg("Bio must be 500 characters or less"),
		validator.MinLenSlice("availability", r.Availability, 1).Msg("Please select at least one shift"),
		validator.EachOneOf("availability", r.Availability, shiftCodes).Msg("Please select shifts from the offered schedule"),
	)
}
