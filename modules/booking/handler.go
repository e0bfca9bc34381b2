package booking

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thehorseproject/website/modules/forms"
	"github.com/thehorseproject/website/pkg/binder"
	"github.com/thehorseproject/website/pkg/email"
	"github.com/thehorseproject/website/pkg/logger"
	"github.com/thehorseproject/website/pkg/validator"
)

// Service handles booking submissions.
type Service struct {
	dispatcher   *email.Dispatcher
	recipient    string
	log          *slog.Logger
	paymentDelay time.Duration
}

// ServiceOption configures the booking service.
type ServiceOption func(*Service)

// WithPaymentDelay overrides the simulated payment delay. Tests use this to
// avoid waiting out the gateway round-trip approximation.
func WithPaymentDelay(d time.Duration) ServiceOption {
	return func(s *Service) { s.paymentDelay = d }
}

// NewService wires the booking pipeline. recipient is the operations inbox
// receiving the admin summaries; the guest receipt goes to the submitted
// email address.
func NewService(dispatcher *email.Dispatcher, recipient string, log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		dispatcher:   dispatcher,
		recipient:    recipient,
		log:          log,
		paymentDelay: defaultPaymentDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.submit)
	return r
}

func (s *Service) submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := binder.Form()(r, &req); err != nil {
		forms.FailField(w, "form", "Invalid form submission", nil)
		return
	}

	sub := parse(req)

	if err := sub.validate(); err != nil {
		errs := validator.ExtractValidationErrors(err)
		forms.Fail(w, errs.Messages(), sub)
		return
	}

	// Business rule: sessions run on weekends only. Checked after schema
	// validation so the date is known to parse.
	if !allowedDay(sub.Date) {
		forms.FailField(w, "date", dayRestrictionMessage, sub)
		return
	}

	transactionID := s.processPayment()

	for _, msg := range notifications(s.recipient, sub, transactionID) {
		if !s.dispatcher.Dispatch(r.Context(), msg) {
			s.log.WarnContext(r.Context(), "booking notification not delivered",
				logger.Form("booking"), logger.Recipient(msg.To))
		}
	}

	forms.OK(w)
}
