//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request TokenRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: TokenRequest{Username: "dispatcher", Password: "s3cret-pass"},
			wantErr: false,
		},
		{
			name:    "missing username",
			request: TokenRequest{Password: "s3cret-pass"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: TokenRequest{Username: "dispatcher"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenResponse_JSON(t *testing.T) {
	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	resp := TokenResponse{Token: "abc.def.ghi", ExpiresAt: expires}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc.def.ghi","expires_at":"2026-05-01T12:00:00Z"}`, string(data))
}
