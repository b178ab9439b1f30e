// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections and schema creation.

# Connecting

Open selects the driver from the dialect and pings the database:

	conn, err := db.Open(ctx, db.SQLite, "file:roompoll.db")
	conn, err := db.Open(ctx, db.Postgres, "postgres://...")

SQLite (modernc.org/sqlite) connections get foreign_keys and busy_timeout
pragmas and the pool is limited to one connection. Postgres uses
github.com/lib/pq with a bounded pool.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: question, creator, room, code and open flag
  - choice: ordered options of a poll
  - vote: one row per voter per poll

# Relationships

	poll 1──* choice
	poll 1──* vote
	choice 1──* vote

A vote references its choice through (poll_id, choice_id), so a vote can
only point at a choice of the same poll.

# Constraints

  - poll.(room, code) unique: codes are unique within a room only
  - choice.(poll_id, position) unique
  - vote.(poll_id, voter) unique: at most one vote per voter per poll

# Placeholders

Queries are written with ? placeholders. Rebind converts them to $1, $2, ...
for postgres and leaves them alone for sqlite.
*/
package db
