// Package allocation decides which candidates get the seats available on a load.
package allocation

import (
	"errors"
	"fmt"
)

// ErrNegativeSeats is returned when a caller asks for fewer than zero seats.
var ErrNegativeSeats = errors.New("seat count must not be negative")

// Error represents an error that occurs during capacity allocation
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
