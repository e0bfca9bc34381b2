package contact

import (
	"fmt"
	"strings"

	"github.com/thehorseproject/website/pkg/email"
)

const notProvided = "(Not provided)"

const bodyTemplate = `New Contact Form Submission
==========================

Subject: %s

From:
Name: %s
Email: %s
Phone: %s

Message:
--------------------------
%s
--------------------------

---
This email was automatically sent from the website contact form.`

// notification builds the operations notification for a validated
// submission. Pure: same request, same message.
func notification(to string, req Request) email.Message {
	phone := req.Phone
	if strings.TrimSpace(phone) == "" {
		phone = notProvided
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("Contact: %s - %s", req.Subject, req.Name),
		Text:    fmt.Sprintf(bodyTemplate, req.Subject, req.Name, req.Email, phone, req.Message),
	}
}
