package schema

// DocumentType identifies one of the supported legal document categories.
// The set is closed; a wizard session never changes type after creation.
type DocumentType string

const (
	EmploymentTermination DocumentType = "employment-termination"
	EmploymentContract    DocumentType = "employment-contract"
	DemandLetter          DocumentType = "demand-letter"
	SettlementAgreement   DocumentType = "settlement-agreement"
	LeaseAgreement        DocumentType = "lease-agreement"
	LeaseTermination      DocumentType = "lease-termination"
	NDA                   DocumentType = "nda"
	PowerOfAttorney       DocumentType = "power-of-attorney"
	WorkplaceComplaint    DocumentType = "workplace-complaint"
	LegalLetter           DocumentType = "legal-letter"
)

// FieldKind is the closed enumeration of input kinds a field can declare.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindTime     FieldKind = "time"
	KindSelect   FieldKind = "select"
)

// Semantic format tags a field may carry in addition to its kind. The rule
// engine maps these to the matching format validator.
const (
	FormatEmail      = "email"
	FormatPhone      = "phone"
	FormatNationalID = "national-id"
)

// FieldDefinition is the static metadata for a single form input. Definitions
// are built once per document type when the registry loads and never mutated
// at runtime.
type FieldDefinition struct {
	Name        string    `yaml:"name"`
	Label       string    `yaml:"label"`
	Kind        FieldKind `yaml:"kind"`
	Required    bool      `yaml:"required"`
	Options     []string  `yaml:"options,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
	Format      string    `yaml:"format,omitempty"`
	Min         *float64  `yaml:"min,omitempty"`
	Max         *float64  `yaml:"max,omitempty"`
}

// DateRelation names the ordering relationship a DateRule enforces between
// its subject and related fields.
type DateRelation string

const (
	RelationNotAfter    DateRelation = "notAfter"
	RelationNotBefore   DateRelation = "notBefore"
	RelationMustBeAfter DateRelation = "mustBeAfter"
	RelationWithinDays  DateRelation = "withinDays"
)

// DateRule declares an ordering relationship between two date fields. When is
// an optional condition expression; an empty condition always applies. Days is
// only meaningful for the withinDays relation.
type DateRule struct {
	Field    string       `yaml:"field"`
	Related  string       `yaml:"related"`
	Relation DateRelation `yaml:"relation"`
	Days     int          `yaml:"days,omitempty"`
	When     string       `yaml:"when,omitempty"`
	Message  string       `yaml:"message,omitempty"`
}

// ConditionalRule makes the listed fields required whenever the condition
// expression evaluates true against the current form state.
type ConditionalRule struct {
	When    string   `yaml:"when"`
	Require []string `yaml:"require"`
	Message string   `yaml:"message,omitempty"`
}

// Numeric rule kinds understood by the rule engine.
const (
	NumericCeiling = "ceiling"
	NumericFloor   = "floor"
	NumericCompare = "compare"
	NumericSumMax  = "sumMax"
)

// NumericRule declares a hard numeric constraint. Ceiling and floor rules
// bound a single field by a literal (Max/Min) or a named legal constant
// (Const). Compare rules relate two fields through Op (lt, lte, gt, gte).
// SumMax rules bound the sum of Fields. All numeric rule violations are
// blocking.
type NumericRule struct {
	Kind    string   `yaml:"kind"`
	Field   string   `yaml:"field,omitempty"`
	Related string   `yaml:"related,omitempty"`
	Op      string   `yaml:"op,omitempty"`
	Fields  []string `yaml:"fields,omitempty"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Const   string   `yaml:"const,omitempty"`
	When    string   `yaml:"when,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// AdvisoryRule declares a typical-range heuristic. Values outside the band
// produce a non-blocking warning, never an error.
type AdvisoryRule struct {
	Field   string   `yaml:"field"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	When    string   `yaml:"when,omitempty"`
	Message string   `yaml:"message"`
}

// CardinalityRule requires a minimum number of the listed fields to be
// filled in, optionally gated by a condition.
type CardinalityRule struct {
	Fields  []string `yaml:"fields"`
	Min     int      `yaml:"min"`
	When    string   `yaml:"when,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// DocumentSchema is the full declarative description of one document type:
// its ordered field list plus every validation rule the engine interprets.
type DocumentSchema struct {
	Type         DocumentType      `yaml:"type"`
	Label        string            `yaml:"label"`
	Fields       []FieldDefinition `yaml:"fields"`
	Conditionals []ConditionalRule `yaml:"conditionalRules,omitempty"`
	DateRules    []DateRule        `yaml:"dateRules,omitempty"`
	NumericRules []NumericRule     `yaml:"numericRules,omitempty"`
	Advisories   []AdvisoryRule    `yaml:"advisories,omitempty"`
	Cardinality  []CardinalityRule `yaml:"cardinality,omitempty"`
}

// Field returns the definition for the named field, if declared.
func (s DocumentSchema) Field(name string) (FieldDefinition, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}
