// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the roompoll API.

# Handler Types

Each handler wraps the poll controller:

  - PollHandler: create, read and close polls
  - VotingHandler: cast or replace a vote
  - ResultsHandler: tally and per-choice voters, creator only

	pollHandler := handlers.NewPollHandler(ctrl)

Handlers do no business logic of their own. They read the room, code and
choice from the path, the requester from X-User-ID, call the controller
and translate the outcome.

# Poll Lifecycle

	POST /rooms/{room}/polls              → CreatePoll (returns code)
	GET  /rooms/{room}/polls/{code}       → GetPoll
	POST /rooms/{room}/polls/{code}/close → ClosePoll
	POST /rooms/{room}/polls/{code}/votes → Vote
	GET  .../results                      → GetResults
	GET  .../choices/{choice}/voters      → GetVoters

# Errors

StatusFor maps error kinds to statuses:

	validation, invalid_choice  400
	not_found                   404
	forbidden                   403
	closed, already_closed      409
	storage                     503 (retryable)
	integrity, unknown          500 (logged, details withheld)

A missing X-User-ID is 401 on every route that needs a requester.
*/
package handlers
