// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/roompoll/cliparse"
	"github.com/danielhkuo/roompoll/handlers"
	"github.com/danielhkuo/roompoll/middleware"
	"github.com/danielhkuo/roompoll/polls"
)

// NewRouter wires the poll routes. gatherer backs /metrics.
func NewRouter(ctrl *polls.Controller, cfg cliparse.Config, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(ctrl)
	votingHandler := handlers.NewVotingHandler(ctrl)
	resultsHandler := handlers.NewResultsHandler(ctrl)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	limited := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(limiter.Middleware(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Poll lifecycle
	mux.HandleFunc("POST /rooms/{room}/polls", limited(pollHandler.CreatePoll))
	mux.HandleFunc("GET /rooms/{room}/polls/{code}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /rooms/{room}/polls/{code}/close", limited(pollHandler.ClosePoll))

	// Voting
	mux.HandleFunc("POST /rooms/{room}/polls/{code}/votes", limited(votingHandler.Vote))

	// Creator-only results
	mux.HandleFunc("GET /rooms/{room}/polls/{code}/results", limited(resultsHandler.GetResults))
	mux.HandleFunc("GET /rooms/{room}/polls/{code}/choices/{choice}/voters", limited(resultsHandler.GetVoters))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("roompoll API v1"))
	})

	return mux
}

// NewHandler is NewRouter behind the CORS middleware, for serving
func NewHandler(ctrl *polls.Controller, cfg cliparse.Config, gatherer prometheus.Gatherer) http.Handler {
	return middleware.CORS(NewRouter(ctrl, cfg, gatherer))
}
