// Package validate implements the rule engine for document schemas: a single
// generic interpreter that sweeps required fields, formats, conditional
// requirements, numeric business rules, date relationships, and witness
// cardinality, accumulating every violation instead of stopping at the
// first.
package validate

// Error is a blocking validation failure. The presence of any Error forbids
// both advancing past the final field step and generation.
type Error struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Warning is a non-blocking advisory notice. Warnings are surfaced to the
// user but never gate navigation or generation.
type Warning struct {
	Message string `json:"message"`
}

// Result aggregates one full validation pass. Both slices preserve sweep
// order, so identical inputs always produce identical results.
type Result struct {
	Errors   []Error
	Warnings []Warning
}

// Valid reports whether the pass produced zero blocking errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorsFor returns the blocking errors attached to one field.
func (r Result) ErrorsFor(field string) []string {
	var out []string
	for _, err := range r.Errors {
		if err.Field == field {
			out = append(out, err.Message)
		}
	}
	return out
}

func (r *Result) addError(field, message string) {
	r.Errors = append(r.Errors, Error{Field: field, Message: message})
}

func (r *Result) addWarning(message string) {
	r.Warnings = append(r.Warnings, Warning{Message: message})
}
