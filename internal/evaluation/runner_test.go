package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func boolPtr(v bool) *bool          { return &v }

func evalProviders() []*entities.Provider {
	return []*entities.Provider{
		{
			ID: 1, FullName: "Dr. Maria Gonzalez", Specialty: "Cardiology",
			Address:         &entities.Address{City: "San Antonio", State: "TX"},
			YearsExperience: 18, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Aetna", "Medicare"},
			Languages:         []string{"English", "Spanish"},
			Rating:            4.7, BoardCertified: true,
		},
		{
			ID: 2, FullName: "Dr. Emily Chen", Specialty: "Pediatrics",
			Address:         &entities.Address{City: "San Francisco", State: "CA"},
			YearsExperience: 12, AcceptingNewPatients: true,
			InsuranceAccepted: []string{"Blue Cross Blue Shield", "Cigna", "Medicaid"},
			Languages:         []string{"English", "Mandarin"},
			Rating:            4.6, BoardCertified: true,
		},
		{
			ID: 3, FullName: "Dr. James Wright", Specialty: "Internal Medicine",
			Address:         &entities.Address{City: "New York", State: "NY"},
			YearsExperience: 15, AcceptingNewPatients: false,
			InsuranceAccepted: []string{"Aetna", "Medicare"},
			Languages:         []string{"English"},
			Rating:            4.8, BoardCertified: true,
		},
	}
}

func TestRunner_PassingCases(t *testing.T) {
	runner := NewRunner(evalProviders())

	cases := []GoldenCase{
		{
			ID: "avg-cardiology-tx", Name: "average rating of TX cardiologists", Difficulty: "easy",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Cardiology"},
					entities.Predicate{Field: entities.FieldState, Op: entities.OpEquals, String: "TX"},
				),
				Aggregation: &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldRating},
			},
			Expect: Expectation{Matched: intPtr(1), Average: floatPtr(4.7), NoMatch: boolPtr(false)},
		},
		{
			ID: "count-accepting", Name: "count providers accepting new patients",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldAcceptingNewPatients, Op: entities.OpEquals, Bool: true},
				),
				Aggregation: &entities.Aggregation{Kind: entities.AggregateCount},
			},
			Expect: Expectation{Count: intPtr(2)},
		},
		{
			ID: "list-aetna", Name: "providers accepting Aetna, best rated first", Difficulty: "medium",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldInsuranceAccepted, Op: entities.OpContains, String: "Aetna"},
				),
				Sort: []entities.SortKey{{Field: entities.FieldRating, Descending: true}},
			},
			Expect: Expectation{ProviderIDs: []int{3, 1}},
		},
	}
	require.NoError(t, ValidateGoldenCases(cases))

	summary := runner.Run(cases)

	assert.Equal(t, 3, summary.TotalCases)
	assert.Equal(t, 3, summary.Passed)
	assert.Equal(t, 0, summary.Failed)
	for _, r := range summary.Results {
		assert.True(t, r.Passed, "case %s failed: %v", r.CaseID, r.Failures)
	}
	assert.Equal(t, 1, summary.ByDifficulty["easy"].Count)
	assert.Equal(t, 2, summary.ByDifficulty["medium"].Count)
}

func TestRunner_DetectsWrongExpectations(t *testing.T) {
	runner := NewRunner(evalProviders())

	summary := runner.Run([]GoldenCase{
		{
			ID: "wrong-count", Name: "expects too many matches",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldState, Op: entities.OpEquals, String: "CA"},
				),
				Aggregation: &entities.Aggregation{Kind: entities.AggregateCount},
			},
			Expect: Expectation{Count: intPtr(5)},
		},
	})

	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 1)
	assert.False(t, summary.Results[0].Passed)
	assert.NotEmpty(t, summary.Results[0].Failures)
}

func TestRunner_NoMatchExpectation(t *testing.T) {
	runner := NewRunner(evalProviders())

	summary := runner.Run([]GoldenCase{
		{
			ID: "nomatch-oncology", Name: "average over an empty match set",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldSpecialty, Op: entities.OpEquals, String: "Oncology"},
				),
				Aggregation: &entities.Aggregation{Kind: entities.AggregateAverage, Field: entities.FieldRating},
			},
			Expect: Expectation{Matched: intPtr(0), NoMatch: boolPtr(true)},
		},
	})

	assert.Equal(t, 1, summary.Passed)
}

func TestRunner_RejectedQueryCountsAsError(t *testing.T) {
	runner := NewRunner(evalProviders())

	summary := runner.Run([]GoldenCase{
		{
			ID: "bad-op", Name: "CONTAINS on a numeric field",
			Query: entities.Query{
				Criteria: entities.And(
					entities.Predicate{Field: entities.FieldRating, Op: entities.OpContains, String: "4"},
				),
			},
		},
	})

	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 1, summary.Failed)
}
