package booking

import (
	"fmt"
	"strconv"

	"github.com/thehorseproject/website/pkg/email"
)

// sessionTime is the fixed window every session runs in.
const sessionTime = "9:30 AM - 12:00 PM"

const adminBodyTemplate = `New Booking Session
==================

Guest: %s
Email: %s
Phone: %s

Date: %s
Time: %s
Guests: %d
Total Paid: $%s
Transaction ID: %s

---
This email was automatically sent from the booking system.`

const receiptBodyTemplate = `Booking Confirmation - The Horse Project Santa Barbara
======================================================

Dear %s,

Thank you for booking your "Play With Rescued Horses" session! We are excited to welcome you to the sanctuary.

Here are your booking details:
Date: %s
Time: %s
Guests: %d
Total Paid: $%s
Booking Ref: %s

Address:
[Sanctuary Address Placeholder]
Santa Barbara, CA

What to bring:
- Closed-toe shoes (mandatory)
- Water bottle
- Sunscreen/Hat
- Curiosity and an open heart!

If you need to reschedule, please just reply to this email. We understand that plans change and we're happy to find another time that works for you!

See you soon!

The Horse Project Team
thehorseprojectsantabarbara.com`

// notifications builds the pair of messages for one confirmed booking: the
// operations summary and the guest-facing receipt. Both carry the same
// transaction id. Pure: same inputs, same messages.
func notifications(adminTo string, sub Submission, transactionID string) []email.Message {
	amount := strconv.FormatFloat(sub.TotalAmount, 'f', -1, 64)

	admin := email.Message{
		To:      adminTo,
		Subject: fmt.Sprintf("New Booking: %s - %s", sub.Name, sub.Date),
		Text: fmt.Sprintf(adminBodyTemplate,
			sub.Name, sub.Email, sub.Phone,
			sub.Date, sessionTime, sub.Guests, amount, transactionID),
	}

	receipt := email.Message{
		To:      sub.Email,
		Subject: fmt.Sprintf("Booking Confirmation: %s", sub.Date),
		Text: fmt.Sprintf(receiptBodyTemplate,
			sub.Name, sub.Date, sessionTime, sub.Guests, amount, transactionID),
	}

	return []email.Message{admin, receipt}
}
