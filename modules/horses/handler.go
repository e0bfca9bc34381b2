package horses

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thehorseproject/website/modules/forms"
)

// View is the wire shape for one horse: the stored record plus the
// derived fields the site renders.
type View struct {
	Horse
	Age        int    `json:"age"`
	AgeDisplay string `json:"ageDisplay"`
	Adoptable  bool   `json:"adoptable"`
	Sanctuary  bool   `json:"sanctuary"`
}

// Service serves the herd listing.
type Service struct {
	herd []Horse
}

// NewService wires the herd endpoint over the embedded records.
func NewService() *Service {
	return &Service{herd: Herd()}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.list)
	r.Get("/{id}", s.get)
	return r
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	records := s.herd
	if status := r.URL.Query().Get("status"); status != "" {
		switch Status(status) {
		case StatusAvailable, StatusSanctuary, StatusAdopted:
			records = FilterByStatus(records, Status(status))
		default:
			forms.FailField(w, "status", "Unknown status filter", nil)
			return
		}
	}

	year := time.Now().Year()
	views := make([]View, 0, len(records))
	for _, h := range records {
		views = append(views, viewOf(h, year))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Service) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, h := range s.herd {
		if h.ID == id {
			writeJSON(w, http.StatusOK, viewOf(h, time.Now().Year()))
			return
		}
	}
	http.NotFound(w, r)
}

func viewOf(h Horse, year int) View {
	return View{
		Horse:      h,
		Age:        h.AgeIn(year),
		AgeDisplay: h.AgeDisplayIn(year),
		Adoptable:  h.Adoptable(),
		Sanctuary:  h.SanctuaryResident(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
