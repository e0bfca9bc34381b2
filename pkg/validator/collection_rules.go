package validator

import (
	"fmt"
	"slices"
)

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Err: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain at least %d items", min),
		},
	}
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Err: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain at most %d items", max),
		},
	}
}

// OneOf validates that a value is among the allowed options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Err: ValidationError{
			Field:   field,
			Message: "must be one of the allowed values",
		},
	}
}

// EachOneOf validates that every element of a multi-select field is among
// the allowed options.
func EachOneOf[T comparable](field string, values []T, options []T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !slices.Contains(options, v) {
					return false
				}
			}
			return true
		},
		Err: ValidationError{
			Field:   field,
			Message: "contains a value that is not allowed",
		},
	}
}
