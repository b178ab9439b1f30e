// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/roompoll/middleware"
	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/polls"
)

type PollHandler struct {
	polls *polls.Controller
}

func NewPollHandler(ctrl *polls.Controller) *PollHandler {
	return &PollHandler{polls: ctrl}
}

// CreatePoll handles POST /rooms/{room}/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	creator := requireRequester(w, r)
	if creator == "" {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := middleware.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	code, err := h.polls.Create(r.Context(), req.Question, req.Options, creator, r.PathValue("room"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{Code: code})
}

// GetPoll handles GET /rooms/{room}/polls/{code}
// Returns the question and numbered choices, never the votes
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.polls.Get(r.Context(), r.PathValue("room"), r.PathValue("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// ClosePoll handles POST /rooms/{room}/polls/{code}/close
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	requester := requireRequester(w, r)
	if requester == "" {
		return
	}

	code := r.PathValue("code")
	if err := h.polls.Close(r.Context(), r.PathValue("room"), code, requester); err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ClosePollResponse{
		Code:   code,
		Status: models.StatusClosed,
	})
}
