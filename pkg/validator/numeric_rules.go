package validator

import "fmt"

func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Err: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Err: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}
