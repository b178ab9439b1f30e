// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the roompoll API server.

roompoll runs single-choice polls inside chat rooms. Anyone in a room can
create a poll, everyone can vote once (a new vote replaces the old one),
and only the creator can see results, mention voters of a choice, or close
the poll.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

PostgreSQL instead:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Flags win over environment variables, which may come from a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: file:roompoll.db; required for postgres)
  - STORE_TIMEOUT (-store-timeout): Per storage call (default: 5s)
  - RATE_LIMIT (-rate): Requests per second per requester, 0 disables (default: 5)
  - RATE_BURST (-burst): Burst size (default: 10)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

# Architecture

  - polls: lifecycle rules (create, vote, close, results, ping)
  - store: SQLite/PostgreSQL persistence
  - tally: vote aggregation
  - auth: poll codes and creator checks
  - handlers, router, middleware: HTTP adapter
  - metrics: Prometheus counters
  - models: data and error types
  - db: connection and schema
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
