// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/roompoll/models"
)

func testChoices() []models.Choice {
	// Deliberately out of position order
	return []models.Choice{
		{ID: 12, PollID: 1, Position: 3, Content: "Pizza"},
		{ID: 10, PollID: 1, Position: 1, Content: "Sushi"},
		{ID: 11, PollID: 1, Position: 2, Content: "Tacos"},
	}
}

func TestCompute(t *testing.T) {
	votes := []models.Vote{
		{ID: 1, PollID: 1, ChoiceID: 10, Voter: "@carol"},
		{ID: 2, PollID: 1, ChoiceID: 12, Voter: "@dave"},
		{ID: 3, PollID: 1, ChoiceID: 10, Voter: "@alice"},
		{ID: 4, PollID: 1, ChoiceID: 10, Voter: "@bob"},
	}

	result, err := Compute(testChoices(), votes)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Choices, 3)

	for i, c := range result.Choices {
		assert.Equal(t, i+1, c.Position, "choices should be ordered by position")
	}

	assert.Equal(t, "Sushi", result.Choices[0].Content)
	assert.Equal(t, []string{"@alice", "@bob", "@carol"}, result.Choices[0].Voters)
	assert.Equal(t, 3, result.Choices[0].Count)
	assert.Equal(t, 75, result.Choices[0].Percent)

	assert.Empty(t, result.Choices[1].Voters)
	assert.Equal(t, 0, result.Choices[1].Percent)

	assert.Equal(t, []string{"@dave"}, result.Choices[2].Voters)
	assert.Equal(t, 25, result.Choices[2].Percent)
}

func TestCompute_NoVotes(t *testing.T) {
	result, err := Compute(testChoices(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	require.Len(t, result.Choices, 3)
	for _, c := range result.Choices {
		assert.NotNil(t, c.Voters, "voters should be an empty list, not nil")
		assert.Empty(t, c.Voters)
		assert.Equal(t, 0, c.Count)
		assert.Equal(t, 0, c.Percent)
	}
}

func TestCompute_UnknownChoiceIsIntegrityError(t *testing.T) {
	votes := []models.Vote{
		{ID: 1, PollID: 1, ChoiceID: 10, Voter: "@alice"},
		{ID: 2, PollID: 1, ChoiceID: 99, Voter: "@mallory"},
	}

	_, err := Compute(testChoices(), votes)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrIntegrity))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  int
	}{
		{"zero total", 0, 0, 0},
		{"all", 4, 4, 100},
		{"none", 0, 4, 0},
		{"third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"half up", 1, 8, 13}, // 12.5
		{"one in seven", 1, 7, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.count, tt.total))
		})
	}
}

func TestPercent_ThreeWaySplitDoesNotSumTo100(t *testing.T) {
	sum := Percent(1, 3) * 3
	assert.Equal(t, 99, sum)
}

func TestFind(t *testing.T) {
	result, err := Compute(testChoices(), nil)
	require.NoError(t, err)

	c, ok := Find(result, 2)
	assert.True(t, ok)
	assert.Equal(t, "Tacos", c.Content)

	_, ok = Find(result, 4)
	assert.False(t, ok)
}

type fakeSource struct {
	choices []models.Choice
	votes   []models.Vote
	err     error
}

func (f fakeSource) ListChoices(ctx context.Context, pollID int64) ([]models.Choice, error) {
	return f.choices, f.err
}

func (f fakeSource) ListVotes(ctx context.Context, pollID int64) ([]models.Vote, error) {
	return f.votes, nil
}

func TestForPoll(t *testing.T) {
	src := fakeSource{
		choices: testChoices(),
		votes:   []models.Vote{{ID: 1, PollID: 1, ChoiceID: 11, Voter: "@alice"}},
	}

	result, err := ForPoll(context.Background(), src, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.PollID)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 100, result.Choices[1].Percent)
}

func TestForPoll_PropagatesStorageError(t *testing.T) {
	src := fakeSource{err: models.ErrStorage}

	_, err := ForPoll(context.Background(), src, 1)
	assert.ErrorIs(t, err, models.ErrStorage)
}
