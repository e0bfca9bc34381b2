package contact

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thehorseproject/website/modules/forms"
	"github.com/thehorseproject/website/pkg/binder"
	"github.com/thehorseproject/website/pkg/email"
	"github.com/thehorseproject/website/pkg/logger"
	"github.com/thehorseproject/website/pkg/validator"
)

// Service handles contact form submissions.
type Service struct {
	dispatcher *email.Dispatcher
	recipient  string
	log        *slog.Logger
}

// NewService wires the contact form pipeline. recipient is the operations
// inbox receiving the notifications.
func NewService(dispatcher *email.Dispatcher, recipient string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{dispatcher: dispatcher, recipient: recipient, log: log}
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

	if err := req.validate(); err != nil {
		errs := validator.ExtractValidationErrors(err)
		forms.Fail(w, errs.Messages(), req)
		return
	}

	msg := notification(s.recipient, req)
	if !s.dispatcher.Dispatch(r.Context(), msg) {
		// Delivery problems are an operator concern, not the visitor's.
		s.log.WarnContext(r.Context(), "contact notification not delivered",
			logger.Form("contact"), logger.Recipient(s.recipient))
	}

	forms.OK(w)
}
