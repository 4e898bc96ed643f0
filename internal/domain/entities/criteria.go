package entities

// Field identifies a provider attribute a predicate or sort key can bind to.
type Field string

const (
	FieldID                   Field = "id"
	FieldFirstName            Field = "first_name"
	FieldLastName             Field = "last_name"
	FieldFullName             Field = "full_name"
	FieldSpecialty            Field = "specialty"
	FieldCity                 Field = "city"
	FieldState                Field = "state"
	FieldZip                  Field = "zip"
	FieldYearsExperience      Field = "years_experience"
	FieldAcceptingNewPatients Field = "accepting_new_patients"
	FieldInsuranceAccepted    Field = "insurance_accepted"
	FieldLanguages            Field = "languages"
	FieldRating               Field = "rating"
	FieldLicenseNumber        Field = "license_number"
	FieldBoardCertified       Field = "board_certified"

	// Derived numeric fields over the array-valued attributes. Usable both as
	// predicates (e.g. at least two languages) and as sort keys.
	FieldInsuranceCount Field = "insurance_count"
	FieldLanguageCount  Field = "language_count"
)

// FieldKind classifies the value type a field carries.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindString
	KindNumber
	KindBool
	KindSet
)

var fieldKinds = map[Field]FieldKind{
	FieldID:                   KindNumber,
	FieldFirstName:            KindString,
	FieldLastName:             KindString,
	FieldFullName:             KindString,
	FieldSpecialty:            KindString,
	FieldCity:                 KindString,
	FieldState:                KindString,
	FieldZip:                  KindString,
	FieldYearsExperience:      KindNumber,
	FieldAcceptingNewPatients: KindBool,
	FieldInsuranceAccepted:    KindSet,
	FieldLanguages:            KindSet,
	FieldRating:               KindNumber,
	FieldLicenseNumber:        KindString,
	FieldBoardCertified:       KindBool,
	FieldInsuranceCount:       KindNumber,
	FieldLanguageCount:        KindNumber,
}

// Kind returns the value kind of the field, or KindUnknown for an
// unrecognized field name.
func (f Field) Kind() FieldKind {
	return fieldKinds[f]
}

// Op is a predicate operator. The set is closed; evaluation is exhaustive
// over these variants.
type Op string

const (
	OpEquals         Op = "EQUALS"
	OpNotEquals      Op = "NOT_EQUALS"
	OpGreaterThan    Op = "GT"
	OpGreaterOrEqual Op = "GTE"
	OpLessThan       Op = "LT"
	OpLessOrEqual    Op = "LTE"
	OpBetween        Op = "BETWEEN"      // inclusive on both bounds
	OpContains       Op = "CONTAINS"     // single-element membership in a set field
	OpContainsAll    Op = "CONTAINS_ALL" // full-subset test against a set field
	OpIn             Op = "IN"           // explicit string allow-list
)

// Predicate binds a field to a comparison. Exactly one operand slot is
// meaningful, determined by the field's kind and the operator:
// String for string EQUALS/NOT_EQUALS and set CONTAINS, Number for numeric
// comparisons, Bool for boolean fields, List for IN and CONTAINS_ALL, and
// Min/Max for BETWEEN.
type Predicate struct {
	Field  Field    `json:"field"`
	Op     Op       `json:"op"`
	String string   `json:"string,omitempty"`
	Number float64  `json:"number,omitempty"`
	Bool   bool     `json:"bool,omitempty"`
	List   []string `json:"list,omitempty"`
	Min    float64  `json:"min,omitempty"`
	Max    float64  `json:"max,omitempty"`
}

// Group is a conjunction: a provider matches when every predicate holds.
// An empty predicate list matches every provider.
type Group struct {
	AllOf []Predicate `json:"all_of"`
}

// Criteria is a disjunction of conjunction groups. The result of evaluating
// it is the union of the groups' match sets, deduplicated by provider id.
// An empty group list selects the whole collection.
type Criteria struct {
	AnyOf []Group `json:"any_of"`
}

// And builds a single-group criteria from the given predicates.
func And(preds ...Predicate) Criteria {
	return Criteria{AnyOf: []Group{{AllOf: preds}}}
}

// Or builds a criteria from the given conjunction groups.
func Or(groups ...Group) Criteria {
	return Criteria{AnyOf: groups}
}
