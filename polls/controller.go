// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danielhkuo/roompoll/auth"
	"github.com/danielhkuo/roompoll/metrics"
	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/tally"
)

// Store is the persistence the controller needs. *store.Store satisfies it.
type Store interface {
	tally.Source
	CreatePoll(ctx context.Context, question string, choices []string, creator, room string) (string, error)
	ClosePoll(ctx context.Context, pollID int64) error
	GetPoll(ctx context.Context, room, code string) (models.Poll, error)
	ChoiceIDByPosition(ctx context.Context, pollID int64, position int) (int64, error)
	CastVote(ctx context.Context, pollID, choiceID int64, voter string) error
}

// Controller applies the poll rules on top of a Store
type Controller struct {
	store   Store
	metrics *metrics.Recorder
}

func NewController(store Store, rec *metrics.Recorder) *Controller {
	return &Controller{store: store, metrics: rec}
}

// Create opens a new poll in room and returns its code. The creator,
// question and options are trimmed and empty options dropped before
// validation. A blank creator could never close the poll, so it is rejected.
func (c *Controller) Create(ctx context.Context, question string, options []string, creator, room string) (code string, err error) {
	defer func() { c.observe("create", err) }()

	creator = strings.TrimSpace(creator)
	if creator == "" {
		return "", fmt.Errorf("%w: creator is required", models.ErrValidation)
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: question is required", models.ErrValidation)
	}

	choices := make([]string, 0, len(options))
	for _, opt := range options {
		if opt = strings.TrimSpace(opt); opt != "" {
			choices = append(choices, opt)
		}
	}
	if len(choices) < models.MinChoices {
		return "", fmt.Errorf("%w: at least %d options are required", models.ErrValidation, models.MinChoices)
	}

	code, err = c.store.CreatePoll(ctx, question, choices, creator, room)
	if err != nil {
		return "", err
	}

	slog.Info("poll created", "room", room, "code", code, "creator", creator, "choices", len(choices))
	return code, nil
}

// Get returns a poll and its numbered choices. Anyone may read it.
func (c *Controller) Get(ctx context.Context, room, code string) (result models.PollWithChoices, err error) {
	defer func() { c.observe("get", err) }()

	poll, err := c.lookup(ctx, room, code)
	if err != nil {
		return models.PollWithChoices{}, err
	}

	choices, err := c.store.ListChoices(ctx, poll.ID)
	if err != nil {
		return models.PollWithChoices{}, err
	}

	return models.PollWithChoices{Poll: poll, Choices: choices}, nil
}

// Close stops voting on a poll. Only the creator may close it.
// Closing a closed poll changes nothing and returns models.ErrAlreadyClosed.
func (c *Controller) Close(ctx context.Context, room, code, requester string) (err error) {
	defer func() { c.observe("close", err) }()

	poll, err := c.lookup(ctx, room, code)
	if err != nil {
		return err
	}
	if err := auth.Authorize(poll.Creator, requester); err != nil {
		return fmt.Errorf("only the creator may close poll %s: %w", code, err)
	}
	if !poll.IsOpen {
		return fmt.Errorf("poll %s: %w", code, models.ErrAlreadyClosed)
	}

	if err := c.store.ClosePoll(ctx, poll.ID); err != nil {
		return err
	}

	slog.Info("poll closed", "room", room, "code", code)
	return nil
}

// Vote records requester's choice, replacing any earlier vote on the poll.
// choiceToken is the 1-based choice position as typed by the user.
func (c *Controller) Vote(ctx context.Context, room, code, requester, choiceToken string) (position int, err error) {
	defer func() { c.observe("vote", err) }()

	poll, err := c.lookup(ctx, room, code)
	if err != nil {
		return 0, err
	}
	if !poll.IsOpen {
		return 0, fmt.Errorf("poll %s: %w", code, models.ErrClosed)
	}

	position, err = ParseChoice(choiceToken)
	if err != nil {
		return 0, err
	}

	choiceID, err := c.store.ChoiceIDByPosition(ctx, poll.ID, position)
	if errors.Is(err, models.ErrNotFound) {
		return 0, fmt.Errorf("%w: poll %s has no option %d", models.ErrInvalidChoice, code, position)
	}
	if err != nil {
		return 0, err
	}

	if err := c.store.CastVote(ctx, poll.ID, choiceID, requester); err != nil {
		return 0, err
	}

	slog.Info("vote cast", "room", room, "code", code, "choice", position)
	return position, nil
}

// ViewResult tallies a poll for its creator
func (c *Controller) ViewResult(ctx context.Context, room, code, requester string) (result models.PollResult, err error) {
	defer func() { c.observe("result", err) }()

	poll, err := c.lookup(ctx, room, code)
	if err != nil {
		return models.PollResult{}, err
	}
	if err := auth.Authorize(poll.Creator, requester); err != nil {
		return models.PollResult{}, fmt.Errorf("only the creator may view results of poll %s: %w", code, err)
	}

	t, err := c.tally(ctx, poll)
	if err != nil {
		return models.PollResult{}, err
	}

	return models.PollResult{
		Code:     poll.Code,
		Question: poll.Question,
		Status:   poll.Status(),
		Tally:    t,
	}, nil
}

// PingChoice returns the voters of one choice so the creator can mention them
func (c *Controller) PingChoice(ctx context.Context, room, code, requester, choiceToken string) (choice models.ChoiceTally, err error) {
	defer func() { c.observe("ping", err) }()

	poll, err := c.lookup(ctx, room, code)
	if err != nil {
		return models.ChoiceTally{}, err
	}
	if err := auth.Authorize(poll.Creator, requester); err != nil {
		return models.ChoiceTally{}, fmt.Errorf("only the creator may ping voters of poll %s: %w", code, err)
	}

	position, err := ParseChoice(choiceToken)
	if err != nil {
		return models.ChoiceTally{}, err
	}

	t, err := c.tally(ctx, poll)
	if err != nil {
		return models.ChoiceTally{}, err
	}

	choice, ok := tally.Find(t, position)
	if !ok {
		return models.ChoiceTally{}, fmt.Errorf("%w: poll %s has no option %d", models.ErrInvalidChoice, code, position)
	}
	return choice, nil
}

// ParseChoice reads a 1-based choice position. Anything that is not a
// positive integer wraps both models.ErrInvalidChoice and models.ErrValidation.
func ParseChoice(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not an option number: %w", models.ErrInvalidChoice, token, models.ErrValidation)
	}
	return n, nil
}

func (c *Controller) lookup(ctx context.Context, room, code string) (models.Poll, error) {
	code = strings.TrimSpace(code)
	if !auth.IsValidPollCode(code) {
		return models.Poll{}, fmt.Errorf("%w: poll %q", models.ErrNotFound, code)
	}
	return c.store.GetPoll(ctx, room, code)
}

func (c *Controller) tally(ctx context.Context, poll models.Poll) (models.TallyResult, error) {
	t, err := tally.ForPoll(ctx, c.store, poll.ID)
	if errors.Is(err, models.ErrIntegrity) {
		slog.Error("tally integrity violation", "room", poll.Room, "code", poll.Code, "error", err)
	}
	if err != nil {
		return models.TallyResult{}, err
	}

	c.metrics.ObserveTally(t.Total)
	return t, nil
}

func (c *Controller) observe(op string, err error) {
	c.metrics.Observe(op, err)
	if errors.Is(err, models.ErrStorage) {
		slog.Warn("storage failure", "op", op, "error", err)
	}
}
