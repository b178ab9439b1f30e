// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/roompoll/middleware"
	"github.com/danielhkuo/roompoll/polls"
)

type ResultsHandler struct {
	polls *polls.Controller
}

func NewResultsHandler(ctrl *polls.Controller) *ResultsHandler {
	return &ResultsHandler{polls: ctrl}
}

// GetResults handles GET /rooms/{room}/polls/{code}/results
// Creator only; available while the poll is open and after it closes
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	requester := requireRequester(w, r)
	if requester == "" {
		return
	}

	result, err := h.polls.ViewResult(r.Context(), r.PathValue("room"), r.PathValue("code"), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetVoters handles GET /rooms/{room}/polls/{code}/choices/{choice}/voters
// Creator only; lists who picked one choice so they can be mentioned
func (h *ResultsHandler) GetVoters(w http.ResponseWriter, r *http.Request) {
	requester := requireRequester(w, r)
	if requester == "" {
		return
	}

	choice, err := h.polls.PingChoice(r.Context(), r.PathValue("room"), r.PathValue("code"), requester, r.PathValue("choice"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, choice)
}
