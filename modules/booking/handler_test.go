package booking_test

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

	"github.com/thehorseproject/website/modules/booking"
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

func newService(sender email.Sender) *booking.Service {
	d := email.NewDispatcher(sender, email.Config{
		SenderName:  "The Horse Project Website",
		SenderEmail: "website@thehorseprojectsantabarbara.com",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return booking.NewService(d, opsEmail, slog.New(slog.NewTextHandler(io.Discard, nil)), booking.WithPaymentDelay(0))
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func validForm(date string) url.Values {
	return url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@example.com"},
		"phone":       {"8055551234"},
		"date":        {date},
		"guests":      {"2"},
		"totalAmount": {"150"},
	}
}

func transactionID(t *testing.T, body string) string {
	t.Helper()
	idx := strings.Index(body, "MOCK_")
	require.GreaterOrEqual(t, idx, 0, "body should contain a transaction id")
	end := idx
	for end < len(body) && body[end] != '\n' {
		end++
	}
	return strings.TrimSpace(body[idx:end])
}

func TestBookingSubmit(t *testing.T) {
	t.Run("sunday booking sends admin summary and guest receipt", func(t *testing.T) {
		sender := &capturingSender{}
		// 2024-01-07 is a Sunday
		w := postForm(t, newService(sender).Handle(), validForm("2024-01-07"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		require.Len(t, sender.sent, 2)

		admin, receipt := sender.sent[0], sender.sent[1]
		assert.Equal(t, opsEmail, admin.To)
		assert.Equal(t, "New Booking: Jane Doe - 2024-01-07", admin.Subject)
		assert.Contains(t, admin.Text, "Guests: 2")
		assert.Contains(t, admin.Text, "Total Paid: $150")
		assert.Contains(t, admin.Text, "Time: 9:30 AM - 12:00 PM")

		assert.Equal(t, "jane@example.com", receipt.To)
		assert.Equal(t, "Booking Confirmation: 2024-01-07", receipt.Subject)
		assert.Contains(t, receipt.Text, "Dear Jane Doe,")
		assert.Contains(t, receipt.Text, "Closed-toe shoes (mandatory)")

		// both messages carry the same MOCK_ transaction id
		adminID := transactionID(t, admin.Text)
		receiptID := transactionID(t, receipt.Text)
		assert.True(t, strings.HasPrefix(adminID, "MOCK_"))
		assert.Equal(t, adminID, receiptID)
	})

	t.Run("friday passes the day-of-week check", func(t *testing.T) {
		sender := &capturingSender{}
		// 2024-01-05 is a Friday
		w := postForm(t, newService(sender).Handle(), validForm("2024-01-05"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, sender.sent, 2)
	})

	t.Run("weekday booking fails and dispatches nothing", func(t *testing.T) {
		sender := &capturingSender{}
		// 2024-01-02 is a Tuesday
		w := postForm(t, newService(sender).Handle(), validForm("2024-01-02"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)

		var resp struct {
			Errors map[string]string `json:"errors"`
			Data   map[string]any    `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Sessions are only available on Friday, Saturday, and Sunday.", resp.Errors["date"])
		assert.Equal(t, "2024-01-02", resp.Data["date"])
	})

	t.Run("schema errors are reported before the day-of-week rule", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm("2024-01-02")
		form.Del("name")
		w := postForm(t, newService(sender).Handle(), form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Name is required", resp.Errors["name"])
		// the business check did not run, so its message is absent
		assert.NotContains(t, resp.Errors, "date")
	})

	t.Run("malformed numeric fields fall back to defaults", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm("2024-01-06") // Saturday
		form.Set("guests", "a few")
		form.Set("totalAmount", "lots")
		w := postForm(t, newService(sender).Handle(), form)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sender.sent, 2)
		assert.Contains(t, sender.sent[0].Text, "Guests: 1")
		assert.Contains(t, sender.sent[0].Text, "Total Paid: $0")
	})

	t.Run("invalid date is a schema error, not a day-of-week error", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm("01/05/2024")
		w := postForm(t, newService(sender).Handle(), form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Please enter a valid date", resp.Errors["date"])
	})

	t.Run("fractional amounts keep their cents", func(t *testing.T) {
		sender := &capturingSender{}
		form := validForm("2024-01-06")
		form.Set("totalAmount", "150.5")
		postForm(t, newService(sender).Handle(), form)

		require.Len(t, sender.sent, 2)
		assert.Contains(t, sender.sent[0].Text, "Total Paid: $150.5")
	})
}
