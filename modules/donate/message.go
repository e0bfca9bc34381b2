package donate

import (
	"fmt"
	"strconv"

	"github.com/thehorseproject/website/pkg/email"
)

const bodyTemplate = `New Donation Pledge
===================

Donor: %s
Email: %s

Amount: $%s
Frequency: %s
Covers Processing Fees: %s

---
This email was automatically sent from the website donation form.`

// notification builds the operations notification for a validated pledge.
// Pure: same submission, same message.
func notification(to string, sub Submission) email.Message {
	coverFees := "No"
	if sub.CoverFees {
		coverFees = "Yes"
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("New Donation Pledge: %s", sub.Name),
		Text: fmt.Sprintf(bodyTemplate,
			sub.Name, sub.Email,
			strconv.FormatFloat(sub.Amount, 'f', -1, 64),
			sub.Frequency, coverFees),
	}
}
