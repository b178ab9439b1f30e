// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:roompoll.db)
  - StoreTimeout: bound on every storage call (default: 5s)
  - RateLimit / RateBurst: per-requester command rate (default: 5/s, burst 10)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-store-timeout  Storage call timeout (Go duration)
	-rate           Commands per second per requester, 0 disables
	-burst          Rate limiter burst
	-log-level      debug, info, warn or error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	STORE_TIMEOUT  → -store-timeout
	RATE_LIMIT     → -rate
	RATE_BURST     → -burst
	LOG_LEVEL      → -log-level

A .env file in the working directory is loaded first if present. It never
overrides variables already set in the environment, and CLI flags take
precedence over both.

# Validation

ParseFlags returns an error if:

  - the database type is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
  - a numeric or duration value does not parse
*/
package cliparse
