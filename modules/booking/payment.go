package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// mockTransactionPrefix marks every generated reference as a placeholder for
// a real payment processor's confirmation id.
const mockTransactionPrefix = "MOCK_"

// defaultPaymentDelay approximates a payment gateway round trip.
const defaultPaymentDelay = time.Second

// processPayment simulates a successful payment authorization: a fixed delay
// followed by a generated reference. No real charge occurs.
func (s *Service) processPayment() string {
	time.Sleep(s.paymentDelay)
	return mockTransactionPrefix + transactionRef()
}

func transactionRef() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return ref[:9]
}
