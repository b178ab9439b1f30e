// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally turns a poll's choices and votes into results.

# Computing

Compute is a pure function of the rows it is given:

	result, err := tally.Compute(choices, votes)

ForPoll loads the rows first through a Source (the store):

	result, err := tally.ForPoll(ctx, store, poll.ID)

Results are recomputed on every call and never cached.

# Algorithm

 1. One bucket per choice, seeded with its position and content.
 2. Each vote adds its voter to the bucket of its choice and bumps the total.
 3. Voters are sorted within each bucket; buckets are sorted by position.

A vote pointing at a choice the poll does not have is reported as
models.ErrIntegrity rather than skipped.

# Percentages

	tally.Percent(1, 3)  // 33
	tally.Percent(2, 3)  // 67
	tally.Percent(0, 0)  // 0

Each share is rounded on its own (half up), so a poll's percentages may add
up to 99 or 101.
*/
package tally
