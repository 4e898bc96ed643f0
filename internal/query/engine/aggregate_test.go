package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/engine"
)

func TestAverage_EmptySetIsNoMatchNotZero(t *testing.T) {
	avg := engine.Average(nil, entities.FieldRating)
	assert.True(t, avg.NoMatch)

	// Distinct from an actual average of zero.
	zero := engine.Average([]*entities.Provider{{ID: 1, Rating: 0}}, entities.FieldRating)
	assert.False(t, zero.NoMatch)
	assert.Equal(t, 0.0, zero.Value)
}

func TestSplitAverage_EmptyBranchIsNoMatch(t *testing.T) {
	// Experienced internists: all four qualifying records are board
	// certified, so the other branch has nothing to average.
	filtered := engine.Filter(testProviders(), entities.And(
		entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Internal Medicine"},
		entities.Predicate{Field: entities.FieldYearsExperience, Op: entities.OpGreaterThan, Number: 10},
	))
	require.Len(t, filtered, 4)

	split := engine.SplitAverage(filtered, entities.FieldRating, entities.FieldBoardCertified)

	assert.False(t, split.True.NoMatch)
	assert.InDelta(t, 4.35, split.True.Value, 1e-9)
	assert.True(t, split.False.NoMatch)

	// A difference against an empty branch is undefined, not a delta
	// against zero.
	assert.True(t, split.Difference().NoMatch)
}

func TestSplitAverage_BothBranches(t *testing.T) {
	filtered := engine.Filter(testProviders(), entities.And(
		entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Internal Medicine"},
	))
	require.Len(t, filtered, 5)

	split := engine.SplitAverage(filtered, entities.FieldYearsExperience, entities.FieldBoardCertified)

	assert.InDelta(t, (15.0+22+11+19)/4, split.True.Value, 1e-9)
	assert.InDelta(t, 8.0, split.False.Value, 1e-9)

	diff := split.Difference()
	assert.False(t, diff.NoMatch)
	assert.InDelta(t, (15.0+22+11+19)/4-8, diff.Value, 1e-9)
}

func TestGrouped_ThresholdExcludesBelowAndDownstreamCount(t *testing.T) {
	// Only one Kaiser pediatrician in California clears the filter, so with
	// a threshold of two no city survives.
	filtered := engine.Filter(testProviders(), entities.And(
		entities.Predicate{Field: entities.FieldState, Op: entities.OpEquals, String: "CA"},
		entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Pediatrics"},
		entities.Predicate{Field: entities.FieldRating, Op: entities.OpGreaterThan, Number: 4.0},
		entities.Predicate{Field: entities.FieldInsuranceAccepted, Op: entities.OpContains, String: "Kaiser Permanente"},
	))
	require.Len(t, filtered, 1)

	groups := engine.Grouped(filtered, entities.Grouping{Key: entities.FieldCity, MinGroupSize: 2})
	assert.Empty(t, groups)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Zero(t, total)
}

func TestGrouped_ThresholdBoundary(t *testing.T) {
	// Board certified and accepting: Pediatrics has exactly 2 members,
	// Internal Medicine exactly 3.
	filtered := engine.Filter(testProviders(), entities.And(
		entities.Predicate{Field: entities.FieldBoardCertified, Op: entities.OpEquals, Bool: true},
		entities.Predicate{Field: entities.FieldAcceptingNewPatients, Op: entities.OpEquals, Bool: true},
	))

	atTwo := engine.Grouped(filtered, entities.Grouping{Key: entities.FieldSpecialty, MinGroupSize: 2})
	keys := make([]string, len(atTwo))
	for i, g := range atTwo {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"Pediatrics", "Internal Medicine"}, keys)

	// Raising the threshold to 3 drops the group with exactly 2 members and
	// keeps the one with exactly 3.
	atThree := engine.Grouped(filtered, entities.Grouping{Key: entities.FieldSpecialty, MinGroupSize: 3})
	require.Len(t, atThree, 1)
	assert.Equal(t, "Internal Medicine", atThree[0].Key)
	assert.Equal(t, 3, atThree[0].Count)
}

func TestGrouped_PerGroupAverage(t *testing.T) {
	filtered := engine.Filter(testProviders(), entities.And(
		entities.Predicate{Field: entities.FieldBoardCertified, Op: entities.OpEquals, Bool: true},
		entities.Predicate{Field: entities.FieldAcceptingNewPatients, Op: entities.OpEquals, Bool: true},
	))

	groups := engine.Grouped(filtered, entities.Grouping{
		Key:          entities.FieldSpecialty,
		MinGroupSize: 3,
		Aggregation:  &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldYearsExperience},
	})

	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Average)
	assert.InDelta(t, (22.0+11+19)/3, groups[0].Average.Value, 1e-9)
}

func TestGrouped_FirstSeenKeyOrder(t *testing.T) {
	groups := engine.Grouped(testProviders(), entities.Grouping{Key: entities.FieldState})

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	// Provider 12 has no address and lands in no bucket.
	assert.Equal(t, []string{"TX", "CA", "NY", "IL", "CO", "WA"}, keys)
}

func TestGrouped_BooleanKey(t *testing.T) {
	groups := engine.Grouped(testProviders(), entities.Grouping{Key: entities.FieldBoardCertified})

	require.Len(t, groups, 2)
	assert.Equal(t, "false", groups[0].Key) // provider 1 is seen first
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "true", groups[1].Key)
	assert.Equal(t, 10, groups[1].Count)
}
