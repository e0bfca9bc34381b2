package validator

import (
	"net/mail"
	"strings"
	"time"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Parse with Go's mail parser first
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Err: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidDate validates that a string parses with the given time layout.
func ValidDate(field, value, layout string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(layout, value)
			return err == nil
		},
		Err: ValidationError{
			Field:   field,
			Message: "must be a valid date",
		},
	}
}
