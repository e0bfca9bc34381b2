package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single failed check on one field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors.
// At most one error is recorded per field (see Apply).
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Messages returns the errors as a field-to-message map, ready to be
// serialized in a form failure response.
func (ve ValidationErrors) Messages() map[string]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Message
		}
	}
	return m
}

// Rule represents a single validation rule bound to a field.
type Rule struct {
	Check func() bool
	Err   ValidationError
}

// Msg overrides the rule's default error message, so schemas can carry
// site-specific wording.
func (r Rule) Msg(message string) Rule {
	r.Err.Message = message
	return r
}

func (r Rule) apply(failed map[string]struct{}, errs *ValidationErrors) {
	if _, done := failed[r.Err.Field]; done {
		return
	}
	if !r.Check() {
		failed[r.Err.Field] = struct{}{}
		errs.Add(r.Err)
	}
}

// Apply executes the rules in order and gathers failures across fields.
// Once a field has a recorded error, later rules for that same field are
// skipped: every invalid field surfaces exactly one message, and one bad
// field never hides problems with the others.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	failed := make(map[string]struct{})

	for _, rule := range rules {
		rule.apply(failed, &errs)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
