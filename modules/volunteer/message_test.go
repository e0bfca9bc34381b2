package volunteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAvailability(t *testing.T) {
	t.Run("maps known codes to display labels", func(t *testing.T) {
		got := formatAvailability([]string{"mon_am", "mon_pm"})
		assert.Equal(t, "Monday AM (8:00-12:00)\n  • Monday PM (1:00-5:00)", got)
	})

	t.Run("unknown codes pass through unchanged", func(t *testing.T) {
		got := formatAvailability([]string{"wed_pm", "sun_am"})
		assert.Equal(t, "wed_pm\n  • Sunday AM (8:00-12:00)", got)
	})

	t.Run("single shift has no separator", func(t *testing.T) {
		assert.Equal(t, "Friday AM (8:00-12:00)", formatAvailability([]string{"fri_am"}))
	})
}

func TestNotificationIdempotence(t *testing.T) {
	req := Request{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Phone:        "8055551234",
		Availability: []string{"sat_am"},
	}

	first := notification("volunteers@thehorseprojectsantabarbara.com", req)
	second := notification("volunteers@thehorseprojectsantabarbara.com", req)
	assert.Equal(t, first, second)
}
