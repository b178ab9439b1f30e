// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the roompoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ctrl, cfg, registry)

NewHandler wraps the same routes in middleware.CORS and is what the
server runs:

	server := &http.Server{Handler: router.NewHandler(ctrl, cfg, registry)}

# Endpoints

Operations:

	GET /health   - Liveness
	GET /metrics  - Prometheus metrics from registry
	GET /         - Banner

Poll lifecycle (X-User-ID identifies the caller):

	POST /rooms/{room}/polls              - Create poll
	GET  /rooms/{room}/polls/{code}       - Question and numbered choices
	POST /rooms/{room}/polls/{code}/close - Close (creator only)

Voting:

	POST /rooms/{room}/polls/{code}/votes - Cast or replace a vote

Results (creator only):

	GET /rooms/{room}/polls/{code}/results                 - Full tally
	GET /rooms/{room}/polls/{code}/choices/{choice}/voters - Voters of one choice

Every route except /health, /metrics and GET poll is rate limited per
requester when cfg.RateLimit is positive.
*/
package router
