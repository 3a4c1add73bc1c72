package control

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongControlValueType is matched by every WrongControlValueTypeError.
	ErrWrongControlValueType = errors.New("wrong control value type")
	// ErrNotNumeric is returned when a value cannot be coerced to a scalar.
	ErrNotNumeric = errors.New("value is not numeric")
	// ErrInvalidNumber is returned for NaN and infinite scalars.
	ErrInvalidNumber = errors.New("number is NaN or infinite")
)

// WrongControlValueTypeError reports a value a control parameter cannot steer by.
type WrongControlValueTypeError struct {
	Control  string
	Got      string
	Expected string
	Err      error
}

func (e *WrongControlValueTypeError) Error() string {
	return fmt.Sprintf("cannot set %s to a %s, expected %s", e.Control, e.Got, e.Expected)
}

func (e *WrongControlValueTypeError) Unwrap() error { return e.Err }

func (e *WrongControlValueTypeError) Is(target error) bool {
	return target == ErrWrongControlValueType
}
