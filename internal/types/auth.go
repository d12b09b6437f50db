// Package types provides type definitions for structured data used throughout the load organizer.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// TokenRequest represents an operator's request for an API token.
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a signed bearer token and its expiry.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
