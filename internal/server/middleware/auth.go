// Package middleware provides HTTP middleware for operator authentication.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values.
type ContextKey string

const operatorKey ContextKey = "operator"

// ErrNoOperator is returned when a request carries no authenticated operator.
var ErrNoOperator = errors.New("operator not found in request context")

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (OperatorGetter, error)
}

// OperatorGetter exposes the operator a token was issued to.
type OperatorGetter interface {
	GetOperator() string
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's operator in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil || claims.GetOperator() == "" {
				unauthorized(w)
				return
			}

			ctx := WithOperator(r.Context(), claims.GetOperator())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="load-organizer"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// WithOperator returns a copy of ctx carrying operator.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey, operator)
}

// GetOperator returns the authenticated operator for the request.
func GetOperator(r *http.Request) (string, error) {
	operator, ok := r.Context().Value(operatorKey).(string)
	if !ok || operator == "" {
		return "", ErrNoOperator
	}
	return operator, nil
}
