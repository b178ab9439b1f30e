// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/roompoll/cliparse"
	"github.com/danielhkuo/roompoll/db"
	"github.com/danielhkuo/roompoll/metrics"
	"github.com/danielhkuo/roompoll/models"
	"github.com/danielhkuo/roompoll/polls"
	"github.com/danielhkuo/roompoll/store"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T, opts ...store.Option) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.New(conn, db.SQLite, opts...), conn
}

// SetupTestController returns a poll controller with its own store and metrics registry
func SetupTestController(t *testing.T) (*polls.Controller, *sql.DB) {
	t.Helper()

	s, conn := SetupTestStore(t)
	return polls.NewController(s, metrics.New(prometheus.NewRegistry())), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		StoreTimeout: 2 * time.Second,
		RateLimit:    0,
		RateBurst:    1,
	}
}

// CreateTestPoll creates an open poll and returns it as stored
func CreateTestPoll(t *testing.T, s *store.Store, room, creator string, choices ...string) models.Poll {
	t.Helper()

	if len(choices) == 0 {
		choices = []string{"Option A", "Option B", "Option C"}
	}

	ctx := context.Background()
	code, err := s.CreatePoll(ctx, "Test Poll", choices, creator, room)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	poll, err := s.GetPoll(ctx, room, code)
	if err != nil {
		t.Fatalf("Failed to load test poll: %v", err)
	}
	return poll
}

// CountVotes counts the vote rows of a voter on a poll, bypassing the store
func CountVotes(t *testing.T, conn *sql.DB, pollID int64, voter string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = ? AND voter = ?`, pollID, voter).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AsUser returns the header map identifying a requester
func AsUser(userID string) map[string]string {
	return map[string]string{"X-User-ID": userID}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
