package validate

import "fmt"

func createError(msg string, args ...any) error {
	return fmt.Errorf(msg, args...)
}

// NotBlank checks that the provided string is non-empty. It returns an error
// built from the provided message and arguments otherwise.
func NotBlank(value string, msg string, args ...any) error {
	if value == "" {
		return createError(msg, args...)
	}
	return nil
}

// IsNotNil checks that the provided value is not nil. It returns an error
// built from the provided message and arguments otherwise.
func IsNotNil(value any, msg string, args ...any) error {
	if value == nil {
		return createError(msg, args...)
	}
	return nil
}

// IsGreaterThanZero checks if the provided numeric value is greater than zero.
// It returns an error built from the provided message and arguments otherwise.
func IsGreaterThanZero[T ~int | ~int64 | ~uint64 | ~float64](value T, msg string, args ...any) error {
	if value <= 0 {
		return createError(msg, args...)
	}
	return nil
}
