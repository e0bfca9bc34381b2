package donate_test

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

	"github.com/thehorseproject/website/modules/donate"
	"github.com/thehorseproject/website/pkg/email"
)

const opsEmail = "thehorseprojectsb@gmail.com"

type capturingSender struct {
	sent []email.Message
}

func (c *capturingSender) Send(_ context.Context, msg email.Message) error {
	c.sent = append(c.sent, msg)
	return nil
}

func newService(sender email.Sender) *donate.Service {
	d := email.NewDispatcher(sender, email.Config{
		SenderName:  "The Horse Project Website",
		SenderEmail: "website@thehorseprojectsantabarbara.com",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return donate.NewService(d, opsEmail, slog.New(slog.NewTextHandler(io.Discard, nil)))
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
		"name":      {"Jane Doe"},
		"email":     {"jane@example.com"},
		"amount":    {"50"},
		"frequency": {"monthly"},
		"coverFees": {"on"},
	}
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Errors
}

func TestDonateSubmit(t *testing.T) {
	t.Run("valid pledge notifies operations", func(t *testing.T) {
		sender := &capturingSender{}
		w := postForm(t, newService(sender).Handle(), validForm())

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sender.sent, 1)

		msg := sender.sent[0]
		assert.Equal(t, opsEmail, msg.To)
		assert.Equal(t, "New Donation Pledge: Jane Doe", msg.Subject)
		assert.Contains(t, msg.Text, "Amount: $50")
		assert.Contains(t, msg.Text, "Frequency: monthly")
		assert.Contains(t, msg.Text, "Covers Processing Fees: Yes")
	})

	t.Run("amount below the minimum is rejected", func(t *testing.T) {
		form := validForm()
		form.Set("amount", "0.5")
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Minimum donation is $1", fieldErrors(t, w)["amount"])
	})

	t.Run("amount above the maximum is rejected", func(t *testing.T) {
		form := validForm()
		form.Set("amount", "10001")
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		assert.Equal(t, "Maximum donation is $10,000", fieldErrors(t, w)["amount"])
	})

	t.Run("unparseable amount is rejected", func(t *testing.T) {
		form := validForm()
		form.Set("amount", "fifty")
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		assert.Equal(t, "Please enter a valid amount", fieldErrors(t, w)["amount"])
	})

	t.Run("unknown frequency is rejected", func(t *testing.T) {
		form := validForm()
		form.Set("frequency", "weekly")
		w := postForm(t, newService(&capturingSender{}).Handle(), form)

		assert.Equal(t, "Please select a donation frequency", fieldErrors(t, w)["frequency"])
	})

	t.Run("fee coverage defaults to no", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm()
		form.Del("coverFees")
		postForm(t, newService(sender).Handle(), form)

		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].Text, "Covers Processing Fees: No")
	})
}
