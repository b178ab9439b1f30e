// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/roompoll/middleware"
	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/polls"
)

type VotingHandler struct {
	polls *polls.Controller
}

func NewVotingHandler(ctrl *polls.Controller) *VotingHandler {
	return &VotingHandler{polls: ctrl}
}

// Vote handles POST /rooms/{room}/polls/{code}/votes
// A repeated vote replaces the voter's earlier one
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	voter := requireRequester(w, r)
	if voter == "" {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := middleware.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	code := r.PathValue("code")
	position, err := h.polls.Vote(r.Context(), r.PathValue("room"), code, voter, req.Choice)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Code: code, Choice: position})
}
