// Package engine evaluates structured criteria queries against a read-only
// provider snapshot: multi-predicate boolean filtering, grouping and
// aggregation, and deterministic multi-key ranking. The engine is pure and
// synchronous; it never mutates provider records and holds no state between
// queries.
package engine

import (
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// Evaluate runs a structured query against the snapshot and returns a typed
// result. The snapshot's order is the stable fallback order everywhere:
// unsorted list results preserve it, and ranking ties exhaust to it.
//
// Malformed queries fail fast with an INVALID_CRITERIA error; per-record data
// gaps (e.g. a provider without an address) only make the affected predicate
// evaluate false.
func Evaluate(snapshot []*entities.Provider, q entities.Query) (*entities.QueryResult, error) {
	if err := ValidateQuery(q); err != nil {
		return nil, err
	}

	filtered := Filter(snapshot, q.Criteria)
	result := &entities.QueryResult{Matched: len(filtered)}

	switch {
	case q.Grouping != nil:
		result.Kind = entities.ResultGrouped
		result.Groups = Grouped(filtered, *q.Grouping)

	case q.Aggregation != nil && q.Aggregation.SplitBy != nil:
		result.Kind = entities.ResultSplit
		split := SplitAverage(filtered, q.Aggregation.Field, *q.Aggregation.SplitBy)
		result.Split = &split

	case q.Aggregation != nil && q.Aggregation.Kind == entities.AggregateCount:
		result.Kind = entities.ResultCount
		count := len(filtered)
		result.Count = &count

	case q.Aggregation != nil:
		result.Kind = entities.ResultAverage
		avg := Average(filtered, q.Aggregation.Field)
		result.Average = &avg

	default:
		result.Kind = entities.ResultList
		result.Providers = Rank(filtered, q.Sort, q.Limit)
	}

	return result, nil
}
