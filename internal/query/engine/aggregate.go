package engine

import (
	"strconv"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// Average computes the mean of a numeric field over the providers. An empty
// input yields the NoMatch sentinel, which is distinct from an average of
// zero and is never reported as 0 or NaN.
func Average(providers []*entities.Provider, field entities.Field) entities.Stat {
	if len(providers) == 0 {
		return entities.NoMatchStat()
	}

	var sum float64
	for _, p := range providers {
		sum += numberValue(p, field)
	}
	return entities.NewStat(sum / float64(len(providers)))
}

// SplitAverage averages a numeric field over the two mutually exclusive
// branches induced by a boolean field. Each branch reports NoMatch
// independently when it has no members.
func SplitAverage(providers []*entities.Provider, field, splitBy entities.Field) entities.SplitResult {
	var trueBranch, falseBranch []*entities.Provider
	for _, p := range providers {
		if boolValue(p, splitBy) {
			trueBranch = append(trueBranch, p)
		} else {
			falseBranch = append(falseBranch, p)
		}
	}

	return entities.SplitResult{
		Field: splitBy,
		True:  Average(trueBranch, field),
		False: Average(falseBranch, field),
	}
}

type bucket struct {
	key     string
	members []*entities.Provider
}

// Grouped buckets the providers by the grouping key and computes the
// per-group aggregate. Groups appear in first-seen order of their key value.
// Groups with fewer than MinGroupSize members are dropped entirely; when no
// group clears the threshold the result is an empty slice, not an error.
func Grouped(providers []*entities.Provider, g entities.Grouping) []entities.GroupResult {
	buckets := groupBy(providers, g.Key)

	results := []entities.GroupResult{}
	for _, b := range buckets {
		if len(b.members) < g.MinGroupSize {
			continue
		}

		group := entities.GroupResult{
			Key:   b.key,
			Count: len(b.members),
		}
		if g.Aggregation != nil && g.Aggregation.Kind == entities.AggregateAverage {
			avg := Average(b.members, g.Aggregation.Field)
			group.Average = &avg
		}
		results = append(results, group)
	}
	return results
}

// groupBy partitions providers by key value in first-seen order. Records for
// which the key is absent (e.g. grouping by city when a provider has no
// address) fall into no bucket.
func groupBy(providers []*entities.Provider, key entities.Field) []*bucket {
	index := map[string]*bucket{}
	ordered := []*bucket{}

	for _, p := range providers {
		value, present := groupKey(p, key)
		if !present {
			continue
		}

		b, seen := index[value]
		if !seen {
			b = &bucket{key: value}
			index[value] = b
			ordered = append(ordered, b)
		}
		b.members = append(b.members, p)
	}
	return ordered
}

func groupKey(p *entities.Provider, key entities.Field) (string, bool) {
	switch key.Kind() {
	case entities.KindString:
		return stringValue(p, key)
	case entities.KindBool:
		return strconv.FormatBool(boolValue(p, key)), true
	}
	return "", false
}
