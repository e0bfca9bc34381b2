// Package horses exposes the sanctuary's herd as read-only reference data:
// an immutable record per horse with derived accessors for age and
// adoptability.
package horses

import (
	"fmt"
	"time"
)

// Status is a horse's adoption/sanctuary status.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSanctuary Status = "Sanctuary"
	StatusAdopted   Status = "Adopted"
)

// Horse is one herd record. Values are never mutated after load.
type Horse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Breed           string `json:"breed"`
	BirthYear       int    `json:"birthYear"`
	Status          Status `json:"status"`
	Bio             string `json:"bio"`
	Image           string `json:"image"`
	SponsorshipTier string `json:"sponsorshipTier,omitempty"`
}

// Age is the horse's current age in years.
func (h Horse) Age() int {
	return h.AgeIn(time.Now().Year())
}

// AgeIn computes the age as of the given calendar year.
func (h Horse) AgeIn(year int) int {
	return year - h.BirthYear
}

// Adoptable reports whether the horse is available for adoption.
func (h Horse) Adoptable() bool {
	return h.Status == StatusAvailable
}

// SanctuaryResident reports whether the horse is a permanent resident.
func (h Horse) SanctuaryResident() bool {
	return h.Status == StatusSanctuary
}

// AgeDisplay is the formatted age string, e.g. "12 years old".
func (h Horse) AgeDisplay() string {
	return h.AgeDisplayIn(time.Now().Year())
}

// AgeDisplayIn formats the age as of the given calendar year with correct
// singular wording for exactly one year.
func (h Horse) AgeDisplayIn(year int) string {
	age := h.AgeIn(year)
	if age == 1 {
		return "1 year old"
	}
	return fmt.Sprintf("%d years old", age)
}

// FilterByStatus returns the horses matching the given status.
func FilterByStatus(herd []Horse, status Status) []Horse {
	var out []Horse
	for _, h := range herd {
		if h.Status == status {
			out = append(out, h)
		}
	}
	return out
}
