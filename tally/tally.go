// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/roompoll/models"
)

// Source loads the rows a tally is computed from. *store.Store satisfies it.
type Source interface {
	ListChoices(ctx context.Context, pollID int64) ([]models.Choice, error)
	ListVotes(ctx context.Context, pollID int64) ([]models.Vote, error)
}

// ForPoll loads a poll's choices and votes and tallies them
func ForPoll(ctx context.Context, src Source, pollID int64) (models.TallyResult, error) {
	choices, err := src.ListChoices(ctx, pollID)
	if err != nil {
		return models.TallyResult{}, fmt.Errorf("failed to get choices: %w", err)
	}

	votes, err := src.ListVotes(ctx, pollID)
	if err != nil {
		return models.TallyResult{}, fmt.Errorf("failed to get votes: %w", err)
	}

	result, err := Compute(choices, votes)
	if err != nil {
		return models.TallyResult{}, err
	}
	result.PollID = pollID
	return result, nil
}

// Compute groups votes by choice. Choices come back ordered by position,
// each with its voters sorted, even when nobody voted for it.
func Compute(choices []models.Choice, votes []models.Vote) (models.TallyResult, error) {
	buckets := make(map[int64]*models.ChoiceTally, len(choices))
	for _, c := range choices {
		buckets[c.ID] = &models.ChoiceTally{
			Position: c.Position,
			Content:  c.Content,
			Voters:   []string{},
		}
	}

	total := 0
	for _, v := range votes {
		b, ok := buckets[v.ChoiceID]
		if !ok {
			return models.TallyResult{}, fmt.Errorf("%w: vote %d by %q references choice %d outside poll %d",
				models.ErrIntegrity, v.ID, v.Voter, v.ChoiceID, v.PollID)
		}
		b.Voters = append(b.Voters, v.Voter)
		total++
	}

	result := models.TallyResult{
		Total:   total,
		Choices: make([]models.ChoiceTally, 0, len(buckets)),
	}
	for _, b := range buckets {
		sort.Strings(b.Voters)
		b.Count = len(b.Voters)
		b.Percent = Percent(b.Count, total)
		result.Choices = append(result.Choices, *b)
	}

	sort.Slice(result.Choices, func(i, j int) bool {
		return result.Choices[i].Position < result.Choices[j].Position
	})

	return result, nil
}

// Percent is count/total as a whole percentage, rounded half up.
// A zero total yields 0. Rounded shares need not add up to 100.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Find returns the tally of the choice at position
func Find(result models.TallyResult, position int) (models.ChoiceTally, bool) {
	for _, c := range result.Choices {
		if c.Position == position {
			return c, true
		}
	}
	return models.ChoiceTally{}, false
}
