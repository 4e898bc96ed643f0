package entities

// Stat is the outcome of a numeric aggregation. NoMatch reports that there
// were no records to aggregate over; it is distinct from a computed value of
// zero and is never rendered as 0 or NaN.
type Stat struct {
	Value   float64 `json:"value"`
	NoMatch bool    `json:"no_match,omitempty"`
}

// NewStat returns a computed stat.
func NewStat(v float64) Stat {
	return Stat{Value: v}
}

// NoMatchStat returns the no-match sentinel.
func NoMatchStat() Stat {
	return Stat{NoMatch: true}
}

// ResultKind identifies the shape of a query result.
type ResultKind string

const (
	ResultList    ResultKind = "list"
	ResultCount   ResultKind = "count"
	ResultAverage ResultKind = "average"
	ResultGrouped ResultKind = "grouped"
	ResultSplit   ResultKind = "split"
)

// GroupResult is one group of a grouped query: its key value, member count,
// and the per-group aggregate when one was requested.
type GroupResult struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Average *Stat  `json:"average,omitempty"`
}

// SplitResult holds the two branch averages of a split aggregation, keyed by
// the boolean split field's value.
type SplitResult struct {
	Field Field `json:"field"`
	True  Stat  `json:"true"`
	False Stat  `json:"false"`
}

// Difference returns True minus False. When either branch is NoMatch the
// difference is undefined and reported as NoMatch, never as a delta against
// an implicit zero.
func (s SplitResult) Difference() Stat {
	if s.True.NoMatch || s.False.NoMatch {
		return NoMatchStat()
	}
	return NewStat(s.True.Value - s.False.Value)
}

// QueryResult is the engine's typed output. Matched is always the size of
// the filtered set before any truncation or grouping threshold; the field
// populated beyond that depends on Kind.
type QueryResult struct {
	Kind      ResultKind    `json:"kind"`
	Matched   int           `json:"matched"`
	Providers []*Provider   `json:"providers,omitempty"`
	Count     *int          `json:"count,omitempty"`
	Average   *Stat         `json:"average,omitempty"`
	Groups    []GroupResult `json:"groups,omitempty"`
	Split     *SplitResult  `json:"split,omitempty"`
}

// IsNoMatch reports whether the result carries no qualifying records at all:
// an empty list, a zero count, a no-match average, zero surviving groups, or
// a split with both branches empty.
func (r *QueryResult) IsNoMatch() bool {
	switch r.Kind {
	case ResultList:
		return len(r.Providers) == 0
	case ResultCount:
		return r.Count == nil || *r.Count == 0
	case ResultAverage:
		return r.Average == nil || r.Average.NoMatch
	case ResultGrouped:
		return len(r.Groups) == 0
	case ResultSplit:
		return r.Split == nil || (r.Split.True.NoMatch && r.Split.False.NoMatch)
	}
	return r.Matched == 0
}
