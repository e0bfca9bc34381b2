package volunteer

import (
	"fmt"
	"strings"

	"github.com/thehorseproject/website/pkg/email"
)

const notProvided = "(Not provided)"

// shiftLabels maps shift codes to human-readable display strings.
var shiftLabels = map[string]string{
	"mon_am": "Monday AM (8:00-12:00)",
	"mon_pm": "Monday PM (1:00-5:00)",
	"thu_am": "Thursday AM (8:00-12:00)",
	"fri_am": "Friday AM (8:00-12:00)",
	"sat_am": "Saturday AM (8:00-12:00)",
	"sun_am": "Sunday AM (8:00-12:00)",
}

// formatAvailability renders the selected shifts as a bulleted list.
// Unknown codes pass through unchanged.
func formatAvailability(shifts []string) string {
	labels := make([]string, len(shifts))
	for i, s := range shifts {
		if label, ok := shiftLabels[s]; ok {
			labels[i] = label
		} else {
			labels[i] = s
		}
	}
	return strings.Join(labels, "\n  • ")
}

const bodyTemplate = `New Volunteer Application Received
===================================

Name: %s %s
Email: %s
Phone: %s

About Them:
%s

Availability:
  • %s

How They Found Us: %s

---
This email was automatically sent from the website volunteer form.`

// notification builds the coordinator notification for a validated
// application. Pure: same request, same message.
func notification(to string, req Request) email.Message {
	bio := req.Bio
	if strings.TrimSpace(bio) == "" {
		bio = notProvided
	}
	referral := req.ReferralSource
	if strings.TrimSpace(referral) == "" {
		referral = notProvided
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("New Volunteer Application: %s %s", req.FirstName, req.LastName),
		Text: fmt.Sprintf(bodyTemplate,
			req.FirstName, req.LastName, req.Email, req.Phone,
			bio, formatAvailability(req.Availability), referral),
	}
}
