package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/load-organizer/internal/allocation"
	"github.com/jonathan/load-organizer/internal/schemas"
)

// ErrInvalidCredentials indicates an unknown operator or wrong password.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrAuthDisabled indicates a token was requested while authentication is off.
type ErrAuthDisabled struct{}

func (e *ErrAuthDisabled) Error() string {
	return "authentication is disabled"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// validationError converts validator output to an *ErrValidation for the first failing field.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &ErrValidation{Field: ve[0].Field(), Message: ve[0].Tag()}
	}
	return &ErrValidation{Field: "(request)", Message: err.Error()}
}

// HTTPStatus returns the HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		credsErr      *ErrInvalidCredentials
		disabledErr   *ErrAuthDisabled
		allocationErr *allocation.Error
		tooLarge      *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &credsErr):
		return http.StatusUnauthorized
	case errors.As(err, &disabledErr):
		return http.StatusNotFound
	case errors.As(err, &allocationErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
