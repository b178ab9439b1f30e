// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/polls"
	"github.com/danielhkuo/roompoll/testutil"
)

const (
	testRoom    = "lobby"
	testCreator = "@alice:example.org"
	testVoter   = "@bob:example.org"
)

// createPoll creates a poll through the controller and returns its code
func createPoll(t *testing.T, ctrl *polls.Controller, options ...string) string {
	t.Helper()
	if len(options) == 0 {
		options = []string{"Pizza", "Sushi", "Tacos"}
	}
	code, err := ctrl.Create(context.Background(), "Lunch?", options, testCreator, testRoom)
	if err != nil {
		t.Fatalf("Failed to create poll: %v", err)
	}
	return code
}

// pollRequest builds a request for a poll route with path values filled in
func pollRequest(method, path string, body interface{}, user string, values map[string]string) *http.Request {
	var headers map[string]string
	if user != "" {
		headers = testutil.AsUser(user)
	}
	req := testutil.MakeRequest(method, path, body, headers)
	req.SetPathValue("room", testRoom)
	for k, v := range values {
		req.SetPathValue(k, v)
	}
	return req
}

func TestCreatePoll(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewPollHandler(ctrl)

	tests := []struct {
		name           string
		user           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "valid poll",
			user:           testCreator,
			body:           models.CreatePollRequest{Question: "Lunch?", Options: []string{"Pizza", "Sushi"}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank options are dropped",
			user:           testCreator,
			body:           models.CreatePollRequest{Question: "Lunch?", Options: []string{"Pizza", " ", "Sushi"}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing question",
			user:           testCreator,
			body:           models.CreatePollRequest{Options: []string{"Pizza", "Sushi"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing options",
			user:           testCreator,
			body:           map[string]string{"question": "Lunch?"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "single option",
			user:           testCreator,
			body:           models.CreatePollRequest{Question: "Lunch?", Options: []string{"Pizza"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "only blank options",
			user:           testCreator,
			body:           models.CreatePollRequest{Question: "Lunch?", Options: []string{"", "  "}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no requester",
			body:           models.CreatePollRequest{Question: "Lunch?", Options: []string{"Pizza", "Sushi"}},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pollRequest("POST", "/rooms/lobby/polls", tt.body, tt.user, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreatePollResponse
				testutil.AssertJSON(t, w, &resp)
				if len(resp.Code) != models.CodeLength {
					t.Errorf("Expected a %d character code, got %q", models.CodeLength, resp.Code)
				}
			}
		})
	}
}

func TestCreatePoll_InvalidJSON(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewPollHandler(ctrl)

	req := httptest.NewRequest("POST", "/rooms/lobby/polls", nil)
	req.Body = http.NoBody
	req.Header.Set("X-User-ID", testCreator)
	req.SetPathValue("room", testRoom)
	w := httptest.NewRecorder()

	handler.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetPoll(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewPollHandler(ctrl)
	code := createPoll(t, ctrl)

	t.Run("anyone can read", func(t *testing.T) {
		req := pollRequest("GET", "/rooms/lobby/polls/"+code, nil, "", map[string]string{"code": code})
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollWithChoices
		testutil.AssertJSON(t, w, &resp)
		if resp.Poll.Question != "Lunch?" {
			t.Errorf("Expected question 'Lunch?', got %q", resp.Poll.Question)
		}
		if len(resp.Choices) != 3 {
			t.Fatalf("Expected 3 choices, got %d", len(resp.Choices))
		}
		for i, c := range resp.Choices {
			if c.Position != i+1 {
				t.Errorf("Expected position %d, got %d", i+1, c.Position)
			}
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		req := pollRequest("GET", "/rooms/lobby/polls/ZZZZZZ", nil, "", map[string]string{"code": "ZZZZZZ"})
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("other room", func(t *testing.T) {
		req := pollRequest("GET", "/rooms/elsewhere/polls/"+code, nil, "", map[string]string{"code": code, "room": "elsewhere"})
		w := httptest.NewRecorder()

		handler.GetPoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestClosePoll(t *testing.T) {
	ctrl, _ := testutil.SetupTestController(t)
	handler := NewPollHandler(ctrl)
	code := createPoll(t, ctrl)

	tests := []struct {
		name           string
		user           string
		code           string
		expectedStatus int
	}{
		{"no requester", "", code, http.StatusUnauthorized},
		{"not the creator", testVoter, code, http.StatusForbidden},
		{"unknown poll", testCreator, "ZZZZZZ", http.StatusNotFound},
		{"creator closes", testCreator, code, http.StatusOK},
		{"already closed", testCreator, code, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pollRequest("POST", "/rooms/lobby/polls/"+tt.code+"/close", nil, tt.user, map[string]string{"code": tt.code})
			w := httptest.NewRecorder()

			handler.ClosePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.ClosePollResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != models.StatusClosed {
					t.Errorf("Expected status 'closed', got %q", resp.Status)
				}
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{nil, http.StatusOK},
		{models.ErrValidation, http.StatusBadRequest},
		{models.ErrInvalidChoice, http.StatusBadRequest},
		{fmt.Errorf("%w: x: %w", models.ErrInvalidChoice, models.ErrValidation), http.StatusBadRequest},
		{models.ErrNotFound, http.StatusNotFound},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrClosed, http.StatusConflict},
		{models.ErrAlreadyClosed, http.StatusConflict},
		{fmt.Errorf("%w: get poll: %w", models.ErrStorage, errors.New("disk I/O")), http.StatusServiceUnavailable},
		{models.ErrIntegrity, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(models.Kind(tt.err), func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	writeError(w, req, fmt.Errorf("%w: vote 7 references choice 99", models.ErrIntegrity))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Internal error" {
		t.Errorf("Expected generic message, got %q", resp.Message)
	}
}
