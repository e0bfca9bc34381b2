package volunteer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thehorseproject/website/modules/volunteer"
	"github.com/thehorseproject/website/pkg/email"
)

const volunteersEmail = "volunteers@thehorseprojectsantabarbara.com"

type capturingSender struct {
	sent []email.Message
}

func (c *capturingSender) Send(_ context.Context, msg email.Message) error {
	c.sent = append(c.sent, msg)
	return nil
}

func newService(sender email.Sender) *volunteer.Service {
	d := email.NewDispatcher(sender, email.Config{
		SenderName:  "The Horse Project Website",
		SenderEmail: "website@thehorseprojectsantabarbara.com",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return volunteer.NewService(d, volunteersEmail, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func validForm() url.Values {
	return url.Values{
		"firstName":    {"Jane"},
		"lastName":     {"Doe"},
		"email":        {"jane@example.com"},
		"phone":        {"8055551234"},
		"availability": {"mon_am", "sat_am"},
	}
}

func TestVolunteerSubmit(t *testing.T) {
	t.Run("valid application notifies coordinators", func(t *testing.T) {
		sender := &capturingSender{}
		w := postForm(t, newService(sender).Handle(), validForm())

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sender.sent, 1)

		msg := sender.sent[0]
		assert.Equal(t, volunteersEmail, msg.To)
		assert.Equal(t, "New Volunteer Application: Jane Doe", msg.Subject)
		assert.Contains(t, msg.Text, "Name: Jane Doe")
		assert.Contains(t, msg.Text, "  • Monday AM (8:00-12:00)\n  • Saturday AM (8:00-12:00)")
		assert.Contains(t, msg.Text, "About Them:\n(Not provided)")
		assert.Contains(t, msg.Text, "How They Found Us: (Not provided)")
	})

	t.Run("empty availability fails with minimum-selection error", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm()
		form.Del("availability")
		w := postForm(t, newService(sender).Handle(), form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Please select at least one shift", resp.Errors["availability"])
	})

	t.Run("unknown shift code is rejected", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm()
		form["availability"] = []string{"mon_am", "tue_pm"}
		w := postForm(t, newService(sender).Handle(), form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)
	})

	t.Run("short phone number is rejected with the form's wording", func(t *testing.T) {
		form := validForm()
		form.Set("phone", "555")
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Phone number must be at least 10 digits", resp.Errors["phone"])
	})

	t.Run("bio over 500 characters is rejected", func(t *testing.T) {
		form := validForm()
		form.Set("bio", strings.Repeat("a", 501))
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bio must be 500 characters or less", resp.Errors["bio"])
	})

	t.Run("optional fields appear when provided", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm()
		form.Set("bio", "I grew up around horses.")
		form.Set("referralSource", "A friend")
		postForm(t, newService(sender).Handle(), form)

		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].Text, "About Them:\nI grew up around horses.")
		assert.Contains(t, sender.sent[0].Text, "How They Found Us: A friend")
	})
}
