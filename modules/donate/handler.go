package donate

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

// Service handles donation pledge submissions.
type Service struct {
	dispatcher *email.Dispatcher
	recipient  string
	log        *slog.Logger
}

// NewService wires the donation form pipeline. recipient is the operations
// inbox.
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

	sub, amountParsed := parse(req)

	if err := sub.validate(amountParsed); err != nil {
		errs := validator.ExtractValidationErrors(err)
		forms.Fail(w, errs.Messages(), sub)
		return
	}

	msg := notification(s.recipient, sub)
	if !s.dispatcher.Dispatch(r.Context(), msg) {
		s.log.WarnContext(r.Context(), "donation notification not delivered",
			logger.Form("donate"), logger.Recipient(s.recipient))
	}

	forms.OK(w)
}
