package engine

import (
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/entities"
)

// Filter returns the providers matching the criteria, in snapshot order.
// Each record is tested once against the whole disjunction, so the result is
// already deduplicated by id and the union of overlapping groups contains a
// provider exactly once. Repeated runs over an unchanged snapshot return
// identical output.
func Filter(snapshot []*entities.Provider, c entities.Criteria) []*entities.Provider {
	matched := []*entities.Provider{}
	for _, p := range snapshot {
		if MatchesCriteria(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

// MatchesCriteria reports whether the provider satisfies at least one
// conjunction group. An empty criteria selects everything.
func MatchesCriteria(p *entities.Provider, c entities.Criteria) bool {
	if len(c.AnyOf) == 0 {
		return true
	}
	for _, group := range c.AnyOf {
		if matchesGroup(p, group) {
			return true
		}
	}
	return false
}

func matchesGroup(p *entities.Provider, g entities.Group) bool {
	for _, pred := range g.AllOf {
		if !matchesPredicate(p, pred) {
			return false
		}
	}
	return true
}

// matchesPredicate evaluates one leaf predicate. Criteria are validated
// before filtering, so operator/kind mismatches cannot occur here; a record
// missing the referenced field simply fails the predicate.
func matchesPredicate(p *entities.Provider, pred entities.Predicate) bool {
	switch pred.Field.Kind() {
	case entities.KindString:
		value, present := stringValue(p, pred.Field)
		if !present {
			return false
		}
		switch pred.Op {
		case entities.OpEquals:
			return value == pred.String
		case entities.OpNotEquals:
			return value != pred.String
		case entities.OpIn:
			return inList(pred.List, value)
		}

	case entities.KindNumber:
		value := numberValue(p, pred.Field)
		switch pred.Op {
		case entities.OpEquals:
			return value == pred.Number
		case entities.OpNotEquals:
			return value != pred.Number
		case entities.OpGreaterThan:
			return value > pred.Number
		case entities.OpGreaterOrEqual:
			return value >= pred.Number
		case entities.OpLessThan:
			return value < pred.Number
		case entities.OpLessOrEqual:
			return value <= pred.Number
		case entities.OpBetween:
			return value >= pred.Min && value <= pred.Max
		}

	case entities.KindBool:
		value := boolValue(p, pred.Field)
		switch pred.Op {
		case entities.OpEquals:
			return value == pred.Bool
		case entities.OpNotEquals:
			return value != pred.Bool
		}

	case entities.KindSet:
		set := setValue(p, pred.Field)
		switch pred.Op {
		case entities.OpContains:
			return inList(set, pred.String)
		case entities.OpContainsAll:
			for _, want := range pred.List {
				if !inList(set, want) {
					return false
				}
			}
			return true
		}
	}

	return false
}

// stringValue resolves a string field. The second return value is false when
// the field is absent for this record: any address component of a provider
// with no recorded address. An empty license number is present-but-empty, so
// an explicit equality test against "" still works as an absence check.
func stringValue(p *entities.Provider, f entities.Field) (string, bool) {
	switch f {
	case entities.FieldFirstName:
		return p.FirstName, true
	case entities.FieldLastName:
		return p.LastName, true
	case entities.FieldFullName:
		return p.FullName, true
	case entities.FieldSpecialty:
		return p.Specialty, true
	case entities.FieldLicenseNumber:
		return p.LicenseNumber, true
	case entities.FieldCity:
		if p.Address == nil {
			return "", false
		}
		return p.Address.City, true
	case entities.FieldState:
		if p.Address == nil {
			return "", false
		}
		return p.Address.State, true
	case entities.FieldZip:
		if p.Address == nil {
			return "", false
		}
		return p.Address.Zip, true
	}
	return "", false
}

func numberValue(p *entities.Provider, f entities.Field) float64 {
	switch f {
	case entities.FieldID:
		return float64(p.ID)
	case entities.FieldYearsExperience:
		return float64(p.YearsExperience)
	case entities.FieldRating:
		return p.Rating
	case entities.FieldInsuranceCount:
		return float64(len(p.InsuranceAccepted))
	case entities.FieldLanguageCount:
		return float64(len(p.Languages))
	}
	return 0
}

func boolValue(p *entities.Provider, f entities.Field) bool {
	switch f {
	case entities.FieldAcceptingNewPatients:
		return p.AcceptingNewPatients
	case entities.FieldBoardCertified:
		return p.BoardCertified
	}
	return false
}

func setValue(p *entities.Provider, f entities.Field) []string {
	switch f {
	case entities.FieldInsuranceAccepted:
		return p.InsuranceAccepted
	case entities.FieldLanguages:
		return p.Languages
	}
	return nil
}

func inList(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}
