package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/load-organizer/internal/allocation"
	"github.com/jonathan/load-organizer/internal/analytics"
	"github.com/jonathan/load-organizer/internal/optimizer"
	"github.com/jonathan/load-organizer/internal/schemas"
	"github.com/jonathan/load-organizer/internal/types"
	"github.com/rs/zerolog"
)

func (s *Server) handleExitOrder(w http.ResponseWriter, r *http.Request) {
	var req ExitOrderRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := schemas.ValidateRoster(req.Jumpers); err != nil {
		s.fail(w, r, err)
		return
	}

	load := optimizer.ComputeExitOrder(req.Jumpers)
	s.metrics.ObserveOptimization("single", len(load.ExitOrder), load.Recommendations)
	zerolog.Ctx(r.Context()).Debug().
		Int("jumpers", len(load.ExitOrder)).
		Int("groups", len(load.Groups)).
		Int("total_time", load.TotalTime).
		Msg("computed exit order")

	s.jsonResponse(w, http.StatusOK, load)
}

func (s *Server) handleExitOrderBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchExitOrderRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	rosters := make([][]types.RosterEntry, len(req.Loads))
	for i, load := range req.Loads {
		if err := schemas.ValidateRoster(load.Jumpers); err != nil {
			s.fail(w, r, prefixFields(err, fmt.Sprintf("loads.%d.jumpers", i)))
			return
		}
		rosters[i] = load.Jumpers
	}

	results, err := optimizer.ComputeBatch(r.Context(), rosters, s.cfg.Server.BatchConcurrency)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	for _, load := range results {
		s.metrics.ObserveOptimization("batch", len(load.ExitOrder), load.Recommendations)
	}
	zerolog.Ctx(r.Context()).Debug().Int("loads", len(results)).Msg("computed batch exit orders")

	s.jsonResponse(w, http.StatusOK, BatchExitOrderResponse{Results: results})
}

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := schemas.ValidateRoster(req.Candidates); err != nil {
		s.fail(w, r, err)
		return
	}

	candidates := optimizer.Normalize(req.Candidates)
	result, err := allocation.Allocate(req.Seats, candidates)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.ObserveAllocation(len(result.SelectedJumpers), len(result.WaitingList))

	priorities := make([]allocation.Breakdown, len(candidates))
	for i, c := range candidates {
		priorities[i] = allocation.Explain(c)
	}

	s.jsonResponse(w, http.StatusOK, AllocateResponse{
		CapacityAllocationResult: result,
		Priorities:               priorities,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := schemas.ValidateRoster(req.Jumpers); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, analytics.Summarize(optimizer.Normalize(req.Jumpers), req.Capacity))
}

// prefixFields qualifies schema error fields with the location of the roster in the request.
func prefixFields(err error, prefix string) error {
	ve, ok := err.(*schemas.ValidationError)
	if !ok {
		return err
	}
	out := &schemas.ValidationError{Errors: make([]schemas.FieldError, len(ve.Errors))}
	for i, fe := range ve.Errors {
		field := prefix
		if fe.Field != "(root)" {
			field += "." + fe.Field
		}
		out.Errors[i] = schemas.FieldError{Field: field, Message: fe.Message}
	}
	return out
}
