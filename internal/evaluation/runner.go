package evaluation

import (
	"fmt"
	"math"
	"time"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/engine"
)

// averages are decimal fractions of small integer sums, so a tight
// tolerance is enough
const averageTolerance = 1e-9

// Runner evaluates golden cases against a provider snapshot.
type Runner struct {
	snapshot []*entities.Provider
}

func NewRunner(snapshot []*entities.Provider) *Runner {
	return &Runner{snapshot: snapshot}
}

// Run evaluates every golden case and aggregates the outcomes.
func (r *Runner) Run(cases []GoldenCase) *Summary {
	summary := &Summary{
		TotalCases:   len(cases),
		ByDifficulty: make(map[string]*DifficultySummary),
	}

	for _, c := range cases {
		start := time.Now()
		result, err := engine.Evaluate(r.snapshot, c.Query)
		latency := time.Since(start)

		cr := CaseResult{
			CaseID:  c.ID,
			Name:    c.Name,
			Latency: latency,
		}

		if err != nil {
			cr.Failures = append(cr.Failures, fmt.Sprintf("query rejected: %v", err))
			summary.Errored++
		} else {
			cr.Failures = compareExpectation(c.Expect, result)
		}
		cr.Passed = len(cr.Failures) == 0

		r.updateSummary(summary, c, cr)
	}

	if summary.TotalCases > 0 {
		summary.AvgLatency /= time.Duration(summary.TotalCases)
	}
	return summary
}

func (r *Runner) updateSummary(s *Summary, c GoldenCase, cr CaseResult) {
	s.Results = append(s.Results, cr)
	s.AvgLatency += cr.Latency
	if cr.Passed {
		s.Passed++
	} else {
		s.Failed++
	}

	difficulty := c.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	ds, ok := s.ByDifficulty[difficulty]
	if !ok {
		ds = &DifficultySummary{}
		s.ByDifficulty[difficulty] = ds
	}
	ds.Count++
	if cr.Passed {
		ds.Passed++
	}
}

func compareExpectation(expect Expectation, result *entities.QueryResult) []string {
	var failures []string

	if expect.Matched != nil && result.Matched != *expect.Matched {
		failures = append(failures, fmt.Sprintf("matched %d providers, expected %d", result.Matched, *expect.Matched))
	}

	if expect.NoMatch != nil && result.IsNoMatch() != *expect.NoMatch {
		failures = append(failures, fmt.Sprintf("no-match is %v, expected %v", result.IsNoMatch(), *expect.NoMatch))
	}

	if expect.Count != nil {
		if result.Count == nil {
			failures = append(failures, "result carries no count")
		} else if *result.Count != *expect.Count {
			failures = append(failures, fmt.Sprintf("count is %d, expected %d", *result.Count, *expect.Count))
		}
	}

	if expect.Average != nil {
		switch {
		case result.Average == nil:
			failures = append(failures, "result carries no average")
		case result.Average.NoMatch:
			failures = append(failures, "average is no-match, expected a value")
		case math.Abs(result.Average.Value-*expect.Average) > averageTolerance:
			failures = append(failures, fmt.Sprintf("average is %v, expected %v", result.Average.Value, *expect.Average))
		}
	}

	if expect.ProviderIDs != nil {
		ids := make([]int, len(result.Providers))
		for i, p := range result.Providers {
			ids[i] = p.ID
		}
		if !equalInts(ids, expect.ProviderIDs) {
			failures = append(failures, fmt.Sprintf("provider ids %v, expected %v", ids, expect.ProviderIDs))
		}
	}

	if expect.GroupCounts != nil {
		got := make(map[string]int, len(result.Groups))
		for _, g := range result.Groups {
			got[g.Key] = g.Count
		}
		if len(got) != len(expect.GroupCounts) {
			failures = append(failures, fmt.Sprintf("group keys %v, expected %v", keys(got), keys(expect.GroupCounts)))
		} else {
			for key, want := range expect.GroupCounts {
				if got[key] != want {
					failures = append(failures, fmt.Sprintf("group %q has %d providers, expected %d", key, got[key], want))
				}
			}
		}
	}

	return failures
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
