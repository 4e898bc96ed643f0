package evaluation

import (
	"time"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// GoldenCase is a labeled query with its expected outcome, used to check
// engine behavior against hand-verified answers.
type GoldenCase struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Difficulty string         `json:"difficulty"` // easy, medium, hard
	Query      entities.Query `json:"query"`
	Expect     Expectation    `json:"expect"`
}

// Expectation describes the outcome a golden case requires. Only the
// fields relevant to the query's result kind are set; nil fields are
// not checked.
type Expectation struct {
	Matched     *int           `json:"matched,omitempty"`
	NoMatch     *bool          `json:"no_match,omitempty"`
	Count       *int           `json:"count,omitempty"`
	Average     *float64       `json:"average,omitempty"`
	ProviderIDs []int          `json:"provider_ids,omitempty"`
	GroupCounts map[string]int `json:"group_counts,omitempty"`
}

// CaseResult holds the evaluation outcome for a single golden case.
type CaseResult struct {
	CaseID   string
	Name     string
	Passed   bool
	Failures []string
	Latency  time.Duration
}

// Summary holds aggregate results across a golden case run.
type Summary struct {
	TotalCases   int
	Passed       int
	Failed       int
	Errored      int
	AvgLatency   time.Duration
	Results      []CaseResult
	ByDifficulty map[string]*DifficultySummary
}

// DifficultySummary holds pass counts grouped by case difficulty.
type DifficultySummary struct {
	Count  int
	Passed int
}
