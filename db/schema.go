// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	_, err := db.Exec(schemaFor(dialect))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// schemaFor fills in the dialect-specific column types
func schemaFor(dialect Dialect) string {
	id, ts := "INTEGER PRIMARY KEY AUTOINCREMENT", "TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP"
	if dialect == Postgres {
		id, ts = "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ NOT NULL DEFAULT NOW()"
	}
	return strings.NewReplacer("{{id}}", id, "{{timestamp}}", ts).Replace(schema)
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id {{id}},
    code TEXT NOT NULL,
    creator TEXT NOT NULL,
    room TEXT NOT NULL,
    question TEXT NOT NULL,
    is_open BOOLEAN NOT NULL DEFAULT TRUE,
    created_at {{timestamp}},
    UNIQUE (room, code)
);

-- Choices
CREATE TABLE IF NOT EXISTS choice (
    id {{id}},
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 1),
    content TEXT NOT NULL,
    UNIQUE (poll_id, position),
    UNIQUE (poll_id, id)
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id {{id}},
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    choice_id BIGINT NOT NULL,
    voter TEXT NOT NULL,
    UNIQUE (poll_id, voter),
    FOREIGN KEY (poll_id, choice_id) REFERENCES choice(poll_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_choice_poll_id ON choice(poll_id);
CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id);
`
