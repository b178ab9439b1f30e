// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls, choices and votes in SQLite or PostgreSQL.

# Usage

	s := store.New(conn, db.SQLite, store.WithTimeout(2*time.Second))

	code, err := s.CreatePoll(ctx, "Lunch?", []string{"Pizza", "Sushi"}, "@alice", "!room")
	poll, err := s.GetPoll(ctx, "!room", code)
	id, err := s.ChoiceIDByPosition(ctx, poll.ID, 2)
	err = s.CastVote(ctx, poll.ID, id, "@bob")

The store does not check permissions. That is the job of package polls.
CastVote does re-check that the poll is open inside its transaction, so a
vote racing a close cannot land.

# Guarantees

  - A poll and its choices are written in one transaction.
  - Codes are unique per room. CreatePoll retries with a fresh code on
    collision, up to WithMaxCodeAttempts times.
  - A voter has at most one vote per poll. CastVote deletes and upserts in
    one transaction, and the (poll_id, voter) unique index backs it.
  - A vote can only reference a choice of its own poll (composite foreign key).

# Errors

Driver failures and timeouts wrap models.ErrStorage with the driver error
still in the chain. Missing rows are models.ErrNotFound. A vote on a
closed poll is models.ErrClosed.
*/
package store
