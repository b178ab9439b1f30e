// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and error types.

# Domain Types

  - Poll: question, creator, room, short code and open/closed state
  - Choice: one option of a poll, addressed by its 1-based position
  - Vote: a voter's current choice for a poll (at most one per voter)
  - PollWithChoices: poll plus its ordered choices

# Tally Types

Derived on every read, never stored:

  - TallyResult: total vote count and per-choice tallies
  - ChoiceTally: position, content, sorted voters, count and percent
  - PollResult: tally with the poll's code, question and status

# Request Types

  - CreatePollRequest: question, options
  - VoteRequest: choice (position as text)

# Response Types

  - CreatePollResponse: code
  - ClosePollResponse: code, status
  - VoteResponse: code, choice
  - ErrorResponse: error, message

# Errors

Sentinel error kinds, matched with errors.Is:

	ErrValidation     malformed input (too few options, empty question)
	ErrNotFound       no poll for room+code, or missing choice
	ErrForbidden      requester is not the poll creator
	ErrClosed         vote attempted on a closed poll
	ErrAlreadyClosed  close requested on a closed poll (no-op)
	ErrInvalidChoice  choice token does not address a choice
	ErrIntegrity      vote references a choice the poll does not have
	ErrStorage        database failure or timeout (retryable)

# Constants

	StatusOpen   = "open"
	StatusClosed = "closed"
	CodeLength   = 6
	MinChoices   = 2
*/
package models
