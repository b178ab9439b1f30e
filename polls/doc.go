// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls enforces who may do what to a poll, and when.

# Usage

	ctrl := polls.NewController(store, metrics.New(reg))

	code, err := ctrl.Create(ctx, "Lunch?", []string{"Pizza", "Sushi"}, "@alice", "!room")
	pos, err := ctrl.Vote(ctx, "!room", code, "@bob", "2")
	res, err := ctrl.ViewResult(ctx, "!room", code, "@alice")
	voters, err := ctrl.PingChoice(ctx, "!room", code, "@alice", "2")
	err = ctrl.Close(ctx, "!room", code, "@alice")

Polls are addressed by room and code. The same code in another room is a
different poll.

# Rules

	Create      anyone; question and at least 2 non-blank options
	Get         anyone
	Vote        anyone, while the poll is open; replaces earlier vote
	ViewResult  creator only, open or closed
	PingChoice  creator only, open or closed
	Close       creator only; closing twice returns ErrAlreadyClosed

Checks run in a fixed order: poll lookup, then creator check, then the
choice token. A stranger asking for results of a poll that does not exist
gets ErrNotFound, not ErrForbidden.

# Errors

Every error wraps one of the models sentinels. Use errors.Is or
models.Kind to branch on them. A choice token that is not a number
wraps both ErrInvalidChoice and ErrValidation.

Every call is counted in the metrics recorder by operation and outcome.
*/
package polls
