// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides poll code generation and creator authorization.

# Poll Codes

Poll codes are short keys people type into chat:

	code, err := auth.GeneratePollCode()  // e.g. "Q7K2ZD"

Each of the 6 characters is drawn uniformly from A-Z and 0-9 with
crypto/rand, so one user cannot predict the code of another user's poll.
Codes are not unique on their own; the store enforces uniqueness per room
and asks for a new code when an insert collides.

IsValidPollCode reports whether a string has the generated shape, which
lets lookups reject obvious typos without a database round trip.

# Authorization

There is no authentication here. Identities are opaque strings supplied by
the caller and trusted as-is. Authorize only compares them:

	if err := auth.Authorize(poll.Creator, requester); err != nil {
		// err is models.ErrForbidden
	}

Whitespace around either identity is ignored.
*/
package auth
