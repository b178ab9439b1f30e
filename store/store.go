// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/roompoll/auth"
	"github.com/danielhkuo/roompoll/db"
	"github.com/danielhkuo/roompoll/models"
)

const (
	DefaultTimeout         = 5 * time.Second
	DefaultMaxCodeAttempts = 8
)

// Store persists polls, their choices and votes
type Store struct {
	conn            *sql.DB
	dialect         db.Dialect
	timeout         time.Duration
	newCode         func() (string, error)
	maxCodeAttempts int
}

type Option func(*Store)

// WithTimeout bounds every storage call
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithCodeGenerator replaces auth.GeneratePollCode
func WithCodeGenerator(fn func() (string, error)) Option {
	return func(s *Store) { s.newCode = fn }
}

// WithMaxCodeAttempts sets how many codes CreatePoll tries before giving up
func WithMaxCodeAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxCodeAttempts = n
		}
	}
}

func New(conn *sql.DB, dialect db.Dialect, opts ...Option) *Store {
	s := &Store{
		conn:            conn,
		dialect:         dialect,
		timeout:         DefaultTimeout,
		newCode:         auth.GeneratePollCode,
		maxCodeAttempts: DefaultMaxCodeAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePoll inserts an open poll and its choices in one transaction and
// returns the poll's code. A code already used in the room is replaced by
// a fresh one.
func (s *Store) CreatePoll(ctx context.Context, question string, choices []string, creator, room string) (string, error) {
	if len(choices) < models.MinChoices {
		return "", fmt.Errorf("%w: a poll needs at least %d choices, got %d",
			models.ErrValidation, models.MinChoices, len(choices))
	}

	for attempt := 1; attempt <= s.maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", storageErr("generate poll code", err)
		}

		err = s.insertPoll(ctx, code, question, choices, creator, room)
		if err == nil {
			return code, nil
		}
		if !isUniqueViolation(err) {
			return "", storageErr("create poll", err)
		}
		slog.Warn("poll code collision", "room", room, "code", code, "attempt", attempt)
	}

	return "", fmt.Errorf("%w: no free poll code in room after %d attempts",
		models.ErrStorage, s.maxCodeAttempts)
}

func (s *Store) insertPoll(ctx context.Context, code, question string, choices []string, creator, room string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pollID int64
	err = tx.QueryRowContext(ctx, s.q(`
		INSERT INTO poll (code, creator, room, question, is_open)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), code, creator, room, question, true).Scan(&pollID)
	if err != nil {
		return err
	}

	for i, content := range choices {
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO choice (poll_id, position, content)
			VALUES (?, ?, ?)
		`), pollID, i+1, content)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ClosePoll marks a poll closed. Closing a closed poll is not an error.
func (s *Store) ClosePoll(ctx context.Context, pollID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.conn.ExecContext(ctx, s.q(`UPDATE poll SET is_open = ? WHERE id = ?`), false, pollID)
	if err != nil {
		return storageErr("close poll", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("close poll", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: poll %d", models.ErrNotFound, pollID)
	}
	return nil
}

// GetPoll looks a poll up by room and code
func (s *Store) GetPoll(ctx context.Context, room, code string) (models.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p models.Poll
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT id, code, creator, room, question, is_open, created_at
		FROM poll
		WHERE room = ? AND code = ?
	`), room, code).Scan(&p.ID, &p.Code, &p.Creator, &p.Room, &p.Question, &p.IsOpen, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, fmt.Errorf("%w: poll %s", models.ErrNotFound, code)
	}
	if err != nil {
		return models.Poll{}, storageErr("get poll", err)
	}
	return p, nil
}

// ListChoices returns a poll's choices ordered by position
func (s *Store) ListChoices(ctx context.Context, pollID int64) ([]models.Choice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT id, poll_id, position, content
		FROM choice
		WHERE poll_id = ?
		ORDER BY position
	`), pollID)
	if err != nil {
		return nil, storageErr("list choices", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Position, &c.Content); err != nil {
			return nil, storageErr("scan choice", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list choices", err)
	}
	return choices, nil
}

// ChoiceIDByPosition resolves a 1-based position to a choice id
func (s *Store) ChoiceIDByPosition(ctx context.Context, pollID int64, position int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var id int64
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT id FROM choice WHERE poll_id = ? AND position = ?
	`), pollID, position).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: choice %d of poll %d", models.ErrNotFound, position, pollID)
	}
	if err != nil {
		return 0, storageErr("get choice", err)
	}
	return id, nil
}

// CastVote replaces any vote voter has on the poll with one for choiceID.
// The poll is re-read inside the transaction, so a vote racing a close
// returns models.ErrClosed and writes nothing. The delete and insert share
// that transaction, and the insert upserts on (poll_id, voter), so racing
// calls for one voter leave a single row.
func (s *Store) CastVote(ctx context.Context, pollID, choiceID int64, voter string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin vote", err)
	}
	defer tx.Rollback()

	if err := s.lockOpenPoll(ctx, tx, pollID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, s.q(`
		DELETE FROM vote WHERE poll_id = ? AND voter = ?
	`), pollID, voter)
	if err != nil {
		return storageErr("delete previous vote", err)
	}

	err = s.upsertVote(ctx, tx, pollID, choiceID, voter)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: choice %d of poll %d", models.ErrNotFound, choiceID, pollID)
	}
	if err != nil {
		return storageErr("insert vote", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit vote", err)
	}
	return nil
}

// lockOpenPoll fails with models.ErrClosed unless the poll is open.
// On postgres the row stays locked until tx ends, so ClosePoll waits.
func (s *Store) lockOpenPoll(ctx context.Context, tx *sql.Tx, pollID int64) error {
	query := `SELECT is_open FROM poll WHERE id = ?`
	if s.dialect == db.Postgres {
		query += ` FOR UPDATE`
	}

	var open bool
	err := tx.QueryRowContext(ctx, s.q(query), pollID).Scan(&open)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: poll %d", models.ErrNotFound, pollID)
	}
	if err != nil {
		return storageErr("check poll open", err)
	}
	if !open {
		return fmt.Errorf("poll %d: %w", pollID, models.ErrClosed)
	}
	return nil
}

// upsertVote writes voter's vote, overwriting the choice of an existing row
func (s *Store) upsertVote(ctx context.Context, tx *sql.Tx, pollID, choiceID int64, voter string) error {
	_, err := tx.ExecContext(ctx, s.q(`
		INSERT INTO vote (poll_id, choice_id, voter)
		VALUES (?, ?, ?)
		ON CONFLICT (poll_id, voter) DO UPDATE SET choice_id = excluded.choice_id
	`), pollID, choiceID, voter)
	return err
}

// ListVotes returns every vote of a poll in no particular order
func (s *Store) ListVotes(ctx context.Context, pollID int64) ([]models.Vote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT id, poll_id, choice_id, voter FROM vote WHERE poll_id = ?
	`), pollID)
	if err != nil {
		return nil, storageErr("list votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.ChoiceID, &v.Voter); err != nil {
			return nil, storageErr("scan vote", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list votes", err)
	}
	return votes, nil
}

func (s *Store) q(query string) string {
	return db.Rebind(s.dialect, query)
}
