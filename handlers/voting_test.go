// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/testutil"
)

func TestVote(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewVotingHandler(ctrl)
	code := createPoll(t, ctrl)

	tests := []struct {
		name           string
		user           string
		code           string
		body           interface{}
		expectedStatus int
		expectedChoice int
	}{
		{
			name:           "valid vote",
			user:           testVoter,
			code:           code,
			body:           models.VoteRequest{Choice: "2"},
			expectedStatus: http.StatusOK,
			expectedChoice: 2,
		},
		{
			name:           "whitespace around number",
			user:           testVoter,
			code:           code,
			body:           models.VoteRequest{Choice: " 3 "},
			expectedStatus: http.StatusOK,
			expectedChoice: 3,
		},
		{
			name:           "creator may vote too",
			user:           testCreator,
			code:           code,
			body:           models.VoteRequest{Choice: "1"},
			expectedStatus: http.StatusOK,
			expectedChoice: 1,
		},
		{
			name:           "out of range",
			user:           testVoter,
			code:           code,
			body:           models.VoteRequest{Choice: "4"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not a number",
			user:           testVoter,
			code:           code,
			body:           models.VoteRequest{Choice: "pizza"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing choice",
			user:           testVoter,
			code:           code,
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown poll",
			user:           testVoter,
			code:           "ZZZZZZ",
			body:           models.VoteRequest{Choice: "1"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "no requester",
			code:           code,
			body:           models.VoteRequest{Choice: "1"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pollRequest("POST", "/rooms/lobby/polls/"+tt.code+"/votes", tt.body, tt.user, map[string]string{"code": tt.code})
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.VoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Choice != tt.expectedChoice {
					t.Errorf("Expected choice %d, got %d", tt.expectedChoice, resp.Choice)
				}
			}
		})
	}
}

func TestVote_ReplacesEarlierVote(t *testing.T) {
	ctrl, conn := testutil.SetupTestController(t)
	handler := NewVotingHandler(ctrl)
	code := createPoll(t, ctrl)

	for _, choice := range []string{"1", "3"} {
		req := pollRequest("POST", "/rooms/lobby/polls/"+code+"/votes", models.VoteRequest{Choice: choice}, testVoter, map[string]string{"code": code})
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	var pollID int64
	if err := conn.QueryRow(`SELECT id FROM poll WHERE code = ?`, code).Scan(&pollID); err != nil {
		t.Fatalf("Failed to load poll id: %v", err)
	}
	if n := testutil.CountVotes(t, conn, pollID, testVoter); n != 1 {
		t.Errorf("Expected 1 vote row, got %d", n)
	}

	res, err := ctrl.ViewResult(context.Background(), testRoom, code, testCreator)
	if err != nil {
		t.Fatalf("Failed to view results: %v", err)
	}
	if len(res.Tally.Choices[2].Voters) != 1 || res.Tally.Choices[2].Voters[0] != testVoter {
		t.Errorf("Expected the vote to point at choice 3, got %+v", res.Tally.Choices)
	}
}

func TestVote_ClosedPoll(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewVotingHandler(ctrl)
	code := createPoll(t, ctrl)

	if err := ctrl.Close(context.Background(), testRoom, code, testCreator); err != nil {
		t.Fatalf("Failed to close poll: %v", err)
	}

	req := pollRequest("POST", "/rooms/lobby/polls/"+code+"/votes", models.VoteRequest{Choice: "1"}, testVoter, map[string]string{"code": code})
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	res, err := ctrl.ViewResult(context.Background(), testRoom, code, testCreator)
	if err != nil {
		t.Fatalf("Failed to view results: %v", err)
	}
	if res.Tally.Total != 0 {
		t.Errorf("Expected no votes on closed poll, got %d", res.Tally.Total)
	}
}
