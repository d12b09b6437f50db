package server

import (
	"net/http"

	"github.com/jonathan/load-organizer/internal/types"
	"github.com/rs/zerolog"
)

// handleIssueToken exchanges operator credentials for a bearer token.
func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.fail(w, r, &ErrAuthDisabled{})
		return
	}

	var req types.TokenRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	if !s.passwords.VerifyOperator(s.cfg.Auth.Operators, req.Username, req.Password) {
		s.fail(w, r, &ErrInvalidCredentials{})
		return
	}

	token, expiresAt, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	zerolog.Ctx(r.Context()).Info().Str("operator", req.Username).Msg("issued token")

	s.jsonResponse(w, http.StatusOK, types.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
