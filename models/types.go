package models

import "time"

// Poll status values reported to callers
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// CodeLength is the number of characters in a poll code
const CodeLength = 6

// MinChoices is the fewest choices a poll may be created with
const MinChoices = 2

// Request types

type CreatePollRequest struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required"`
}

// Choice is the 1-based position as text, so non-numeric input
// reaches the poll layer unchanged.
type VoteRequest struct {
	Choice string `json:"choice" validate:"required"`
}

// Response types

type CreatePollResponse struct {
	Code string `json:"code"`
}

type ClosePollResponse struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

type VoteResponse struct {
	Code   string `json:"code"`
	Choice int    `json:"choice"`
}

// Domain types

type Poll struct {
	ID        int64     `json:"-"`
	Code      string    `json:"code"`
	Creator   string    `json:"creator"`
	Room      string    `json:"room"`
	Question  string    `json:"question"`
	IsOpen    bool      `json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
}

// Status returns StatusOpen or StatusClosed
func (p Poll) Status() string {
	if p.IsOpen {
		return StatusOpen
	}
	return StatusClosed
}

type Choice struct {
	ID       int64  `json:"-"`
	PollID   int64  `json:"-"`
	Position int    `json:"position"`
	Content  string `json:"content"`
}

type PollWithChoices struct {
	Poll    Poll     `json:"poll"`
	Choices []Choice `json:"choices"`
}

type Vote struct {
	ID       int64  `json:"-"`
	PollID   int64  `json:"-"`
	ChoiceID int64  `json:"-"`
	Voter    string `json:"voter"`
}

// Tally types

type ChoiceTally struct {
	Position int      `json:"position"`
	Content  string   `json:"content"`
	Voters   []string `json:"voters"`
	Count    int      `json:"count"`
	Percent  int      `json:"percent"`
}

type TallyResult struct {
	PollID  int64         `json:"-"`
	Total   int           `json:"total"`
	Choices []ChoiceTally `json:"choices"`
}

// PollResult is a tally together with the poll it was computed for
type PollResult struct {
	Code     string      `json:"code"`
	Question string      `json:"question"`
	Status   string      `json:"status"`
	Tally    TallyResult `json:"tally"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
