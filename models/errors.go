// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Error kinds returned by the store, tally and poll packages.
// Callers match them with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrClosed        = errors.New("poll is closed")
	ErrAlreadyClosed = errors.New("poll is already closed")
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrIntegrity means stored rows contradict each other. It is a bug,
	// not something the user can fix by retrying.
	ErrIntegrity = errors.New("data integrity violation")

	// ErrStorage wraps driver failures and timeouts. Safe for the user to retry.
	ErrStorage = errors.New("storage failure")
)

// Kind names the error kind of err for logs and metric labels.
// Returns "ok" for nil and "unknown" for errors outside the taxonomy.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrStorage):
		return "storage"
	case errors.Is(err, ErrInvalidChoice):
		return "invalid_choice"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrAlreadyClosed):
		return "already_closed"
	case errors.Is(err, ErrClosed):
		return "closed"
	}
	return "unknown"
}
