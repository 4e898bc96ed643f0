package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/engine"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

func TestEvaluate_ListQuery(t *testing.T) {
	result, err := engine.Evaluate(testProviders(), entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldState, Op: entities.OpEquals, String: "CA"},
		),
		Sort:  []entities.SortKey{{Field: entities.FieldRating, Descending: true}},
		Limit: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ResultList, result.Kind)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, []int{8, 2}, providerIDs(result.Providers))
	assert.False(t, result.IsNoMatch())
}

func TestEvaluate_CountQuery(t *testing.T) {
	result, err := engine.Evaluate(testProviders(), entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldInsuranceAccepted, Op: entities.OpContainsAll, List: []string{"Medicare", "Medicaid"}},
		),
		Aggregation: &entities.Aggregation{Kind: entities.AggregateCount},
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ResultCount, result.Kind)
	require.NotNil(t, result.Count)
	assert.Equal(t, 3, *result.Count)
}

func TestEvaluate_AverageNoMatchQuery(t *testing.T) {
	result, err := engine.Evaluate(testProviders(), entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Oncology"},
		),
		Aggregation: &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldRating},
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ResultAverage, result.Kind)
	require.NotNil(t, result.Average)
	assert.True(t, result.Average.NoMatch)
	assert.True(t, result.IsNoMatch())
}

func TestEvaluate_SplitQuery(t *testing.T) {
	splitBy := entities.FieldBoardCertified
	result, err := engine.Evaluate(testProviders(), entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Internal Medicine"},
			entities.Predicate{Field: entities.FieldYearsExperience, Op: entities.OpGreaterThan, Number: 10},
		),
		Aggregation: &entities.Aggregation{
			Kind:    entities.AggregateAverage,
			Field:   entities.FieldRating,
			SplitBy: &splitBy,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ResultSplit, result.Kind)
	require.NotNil(t, result.Split)
	assert.InDelta(t, 4.35, result.Split.True.Value, 1e-9)
	assert.True(t, result.Split.False.NoMatch)
}

func TestEvaluate_Idempotent(t *testing.T) {
	snapshot := testProviders()
	query := entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldBoardCertified, Op: entities.OpEquals, Bool: true},
			entities.Predicate{Field: entities.FieldLanguageCount, Op: entities.OpGreaterOrEqual, Number: 2},
		),
		Sort: []entities.SortKey{
			{Field: entities.FieldRating, Descending: true},
			{Field: entities.FieldInsuranceCount, Descending: true},
		},
		Limit: 3,
	}

	first, err := engine.Evaluate(snapshot, query)
	require.NoError(t, err)
	second, err := engine.Evaluate(snapshot, query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_InvalidCriteria(t *testing.T) {
	splitByString := entities.FieldSpecialty

	cases := []struct {
		name  string
		query entities.Query
	}{
		{
			name: "unknown field",
			query: entities.Query{Criteria: entities.And(
				entities.Predicate{Field: "favorite_color", Op: entities.OpEquals, String: "blue"},
			)},
		},
		{
			name: "operator invalid for field kind",
			query: entities.Query{Criteria: entities.And(
				entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpGreaterThan, Number: 1},
			)},
		},
		{
			name: "contains on scalar field",
			query: entities.Query{Criteria: entities.And(
				entities.Predicate{Field: entities.FieldCity, Op: entities.OpContains, String: "Austin"},
			)},
		},
		{
			name: "between bounds inverted",
			query: entities.Query{Criteria: entities.And(
				entities.Predicate{Field: entities.FieldRating, Op: entities.OpBetween, Min: 5, Max: 4},
			)},
		},
		{
			name: "empty allow list",
			query: entities.Query{Criteria: entities.And(
				entities.Predicate{Field: entities.FieldState, Op: entities.OpIn},
			)},
		},
		{
			name:  "count with field",
			query: entities.Query{Aggregation: &entities.Aggregation{Kind: entities.AggregateCount, Field: entities.FieldRating}},
		},
		{
			name:  "average over non-numeric field",
			query: entities.Query{Aggregation: &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldSpecialty}},
		},
		{
			name: "split by non-boolean field",
			query: entities.Query{Aggregation: &entities.Aggregation{
				Kind: entities.AggregateAverage, Field: entities.FieldRating, SplitBy: &splitByString,
			}},
		},
		{
			name:  "grouping by set field",
			query: entities.Query{Grouping: &entities.Grouping{Key: entities.FieldLanguages}},
		},
		{
			name: "aggregation combined with grouping",
			query: entities.Query{
				Aggregation: &entities.Aggregation{Kind: entities.AggregateCount},
				Grouping:    &entities.Grouping{Key: entities.FieldCity},
			},
		},
		{
			name: "sort on aggregate query",
			query: entities.Query{
				Aggregation: &entities.Aggregation{Kind: entities.AggregateCount},
				Sort:        []entities.SortKey{{Field: entities.FieldRating}},
			},
		},
		{
			name:  "negative limit",
			query: entities.Query{Limit: -1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Evaluate(testProviders(), tc.query)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, apperrors.ErrorTypeInvalidCriteria, apperrors.TypeOf(err))
		})
	}
}

func TestEvaluate_GroupedQuery(t *testing.T) {
	result, err := engine.Evaluate(testProviders(), entities.Query{
		Criteria: entities.And(
			entities.Predicate{Field: entities.FieldBoardCertified, Op: entities.OpEquals, Bool: true},
			entities.Predicate{Field: entities.FieldAcceptingNewPatients, Op: entities.OpEquals, Bool: true},
		),
		Grouping: &entities.Grouping{
			Key:          entities.FieldSpecialty,
			MinGroupSize: 3,
			Aggregation:  &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldYearsExperience},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ResultGrouped, result.Kind)
	assert.Equal(t, 7, result.Matched)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, "Internal Medicine", result.Groups[0].Key)
	assert.InDelta(t, (22.0+11+19)/3, result.Groups[0].Average.Value, 1e-9)
}
