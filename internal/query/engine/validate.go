package engine

import (
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
	apperrors "github.com/Shubham-Saboo/Voice-AI-Agents/pkg/errors"
)

// opsByKind is the closed compatibility table between field kinds and
// operators. Anything outside it is rejected, never silently ignored.
var opsByKind = map[entities.FieldKind]map[entities.Op]bool{
	entities.KindString: {
		entities.OpEquals:    true,
		entities.OpNotEquals: true,
		entities.OpIn:        true,
	},
	entities.KindNumber: {
		entities.OpEquals:         true,
		entities.OpNotEquals:      true,
		entities.OpGreaterThan:    true,
		entities.OpGreaterOrEqual: true,
		entities.OpLessThan:       true,
		entities.OpLessOrEqual:    true,
		entities.OpBetween:        true,
	},
	entities.KindBool: {
		entities.OpEquals:    true,
		entities.OpNotEquals: true,
	},
	entities.KindSet: {
		entities.OpContains:    true,
		entities.OpContainsAll: true,
	},
}

// ValidateQuery checks the whole query object and returns an
// INVALID_CRITERIA error for the first problem found.
func ValidateQuery(q entities.Query) error {
	if err := ValidateCriteria(q.Criteria); err != nil {
		return err
	}

	if q.Aggregation != nil && q.Grouping != nil {
		return apperrors.NewInvalidCriteriaError("aggregation and grouping cannot be combined; nest the aggregation inside the grouping")
	}

	if q.Aggregation != nil {
		if err := validateAggregation(*q.Aggregation, true); err != nil {
			return err
		}
	}

	if q.Grouping != nil {
		if err := validateGrouping(*q.Grouping); err != nil {
			return err
		}
	}

	if len(q.Sort) > 0 && (q.Aggregation != nil || q.Grouping != nil) {
		return apperrors.NewInvalidCriteriaError("sort keys apply only to list queries")
	}
	for _, key := range q.Sort {
		switch key.Field.Kind() {
		case entities.KindNumber, entities.KindString:
		case entities.KindUnknown:
			return apperrors.NewInvalidCriteriaError("unknown sort field %q", key.Field)
		default:
			return apperrors.NewInvalidCriteriaError("field %q is not sortable", key.Field)
		}
	}

	if q.Limit < 0 {
		return apperrors.NewInvalidCriteriaError("limit must be non-negative, got %d", q.Limit)
	}
	if q.Limit > 0 && (q.Aggregation != nil || q.Grouping != nil) {
		return apperrors.NewInvalidCriteriaError("limit applies only to list queries")
	}

	return nil
}

// ValidateCriteria checks every predicate in the criteria tree.
func ValidateCriteria(c entities.Criteria) error {
	for _, group := range c.AnyOf {
		for _, pred := range group.AllOf {
			if err := validatePredicate(pred); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePredicate(pred entities.Predicate) error {
	kind := pred.Field.Kind()
	if kind == entities.KindUnknown {
		return apperrors.NewInvalidCriteriaError("unknown field %q", pred.Field)
	}

	if !opsByKind[kind][pred.Op] {
		return apperrors.NewInvalidCriteriaError("operator %q is not valid for field %q", pred.Op, pred.Field)
	}

	switch pred.Op {
	case entities.OpBetween:
		if pred.Min > pred.Max {
			return apperrors.NewInvalidCriteriaError("between bounds inverted for field %q: min %v > max %v", pred.Field, pred.Min, pred.Max)
		}
	case entities.OpContains:
		if pred.String == "" {
			return apperrors.NewInvalidCriteriaError("contains on field %q requires a value", pred.Field)
		}
	case entities.OpContainsAll, entities.OpIn:
		if len(pred.List) == 0 {
			return apperrors.NewInvalidCriteriaError("operator %q on field %q requires a non-empty list", pred.Op, pred.Field)
		}
	}

	return nil
}

func validateAggregation(agg entities.Aggregation, allowSplit bool) error {
	switch agg.Kind {
	case entities.AggregateCount:
		if agg.Field != "" {
			return apperrors.NewInvalidCriteriaError("count aggregation takes no field, got %q", agg.Field)
		}
	case entities.AggregateAverage:
		if agg.Field.Kind() != entities.KindNumber {
			return apperrors.NewInvalidCriteriaError("average requires a numeric field, got %q", agg.Field)
		}
	default:
		return apperrors.NewInvalidCriteriaError("unknown aggregation kind %q", agg.Kind)
	}

	if agg.SplitBy != nil {
		if !allowSplit {
			return apperrors.NewInvalidCriteriaError("split aggregation cannot be nested inside a grouping")
		}
		if agg.Kind != entities.AggregateAverage {
			return apperrors.NewInvalidCriteriaError("split_by requires an average aggregation")
		}
		if agg.SplitBy.Kind() != entities.KindBool {
			return apperrors.NewInvalidCriteriaError("split_by requires a boolean field, got %q", *agg.SplitBy)
		}
	}

	return nil
}

func validateGrouping(g entities.Grouping) error {
	switch g.Key.Kind() {
	case entities.KindString, entities.KindBool:
	case entities.KindUnknown:
		return apperrors.NewInvalidCriteriaError("unknown grouping key %q", g.Key)
	default:
		return apperrors.NewInvalidCriteriaError("field %q cannot be used as a grouping key", g.Key)
	}

	if g.MinGroupSize < 0 {
		return apperrors.NewInvalidCriteriaError("min_group_size must be non-negative, got %d", g.MinGroupSize)
	}

	if g.Aggregation != nil {
		return validateAggregation(*g.Aggregation, false)
	}

	return nil
}
