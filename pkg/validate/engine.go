package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/qanoonsoft/docwizard/internal/legal"
	"github.com/qanoonsoft/docwizard/pkg/condition"
	"github.com/qanoonsoft/docwizard/pkg/formstate"
	"github.com/qanoonsoft/docwizard/pkg/schema"
)

const timeLayout = "15:04"

// Option customises an Engine.
type Option func(*Engine)

// WithConstants overrides the legal constants the engine resolves named
// numeric bounds against.
func WithConstants(consts legal.Constants) Option {
	return func(e *Engine) {
		e.consts = consts
	}
}

// Engine interprets document schemas against form states. It holds no
// per-session state; one engine serves any number of wizard sessions.
type Engine struct {
	registry *schema.Registry
	consts   legal.Constants
}

// New constructs an engine over the supplied registry using the default
// legal constants unless overridden.
func New(registry *schema.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		consts:   legal.Defaults(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Validate runs every sweep for the document type and returns the full
// aggregated result. The sweeps never short-circuit: all violations for the
// current state are visible at once so the user can fix them together. The
// result is recomputed from scratch on every call; nothing is patched
// incrementally, which rules out stale-error bugs by construction.
//
// Sweep order: required fields, field formats and kind constraints,
// conditional requirements, numeric business rules, date relationships,
// cardinality, then advisories. Unknown document types yield an empty valid
// result; callers guard against an unselected type themselves.
func (e *Engine) Validate(docType schema.DocumentType, state *formstate.State) Result {
	var result Result

	doc, ok := e.registry.Schema(docType)
	if !ok {
		return result
	}
	if state == nil {
		state = formstate.New()
	}

	e.sweepRequired(doc, state, &result)
	e.sweepKindsAndFormats(doc, state, &result)
	e.sweepConditionals(doc, state, &result)
	e.sweepNumericRules(doc, state, &result)
	result.Errors = append(result.Errors, ValidateDates(doc.DateRules, state)...)
	e.sweepCardinality(doc, state, &result)
	e.sweepAdvisories(doc, state, &result)

	return result
}

func (e *Engine) sweepRequired(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, field := range doc.Fields {
		if field.Required && !state.Has(field.Name) {
			result.addError(field.Name, fmt.Sprintf("%s is required", field.Label))
		}
	}
}

// sweepKindsAndFormats checks present values against their declared kind
// (numbers parse and stay within min/max, dates and times parse, selects
// hold a declared option) and runs the semantic format predicates. Absent
// values are skipped; the required sweep already spoke for those.
func (e *Engine) sweepKindsAndFormats(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, field := range doc.Fields {
		if !state.Has(field.Name) {
			continue
		}
		raw := state.Get(field.Name)

		switch field.Kind {
		case schema.KindNumber:
			value, ok := state.Number(field.Name)
			if !ok {
				result.addError(field.Name, fmt.Sprintf("%s must be a number", field.Label))
				break
			}
			if field.Min != nil && value < *field.Min {
				result.addError(field.Name, fmt.Sprintf("%s cannot be below %v", field.Label, *field.Min))
			}
			if field.Max != nil && value > *field.Max {
				result.addError(field.Name, fmt.Sprintf("%s cannot exceed %v", field.Label, *field.Max))
			}
		case schema.KindDate:
			if _, ok := state.Date(field.Name); !ok {
				result.addError(field.Name, fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field.Label))
			}
		case schema.KindTime:
			if _, err := time.Parse(timeLayout, strings.TrimSpace(raw)); err != nil {
				result.addError(field.Name, fmt.Sprintf("%s must be a valid time (HH:MM)", field.Label))
			}
		case schema.KindSelect:
			if !containsOption(field.Options, strings.TrimSpace(raw)) {
				result.addError(field.Name, fmt.Sprintf("%s must be one of the listed options", field.Label))
			}
		}

		predicate := formatPredicate(formatTag(field))
		if predicate == nil {
			continue
		}
		if ok, want := predicate(raw); !ok {
			result.addError(field.Name, fmt.Sprintf("%s is not valid; expected %s", field.Label, want))
		}
	}
}

// formatTag returns the semantic format a field is validated against,
// falling back to the field kind for email and tel inputs that carry no
// explicit tag.
func formatTag(field schema.FieldDefinition) string {
	if field.Format != "" {
		return field.Format
	}
	switch field.Kind {
	case schema.KindEmail:
		return schema.FormatEmail
	case schema.KindTel:
		return schema.FormatPhone
	default:
		return ""
	}
}

func (e *Engine) sweepConditionals(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, rule := range doc.Conditionals {
		applies, err := condition.Eval(rule.When, state.Values())
		if err != nil || !applies {
			continue
		}
		for _, name := range rule.Require {
			if state.Has(name) {
				continue
			}
			message := rule.Message
			if message == "" {
				label := name
				if field, ok := doc.Field(name); ok {
					label = field.Label
				}
				message = fmt.Sprintf("%s is required", label)
			}
			result.addError(name, message)
		}
	}
}

func (e *Engine) sweepNumericRules(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, rule := range doc.NumericRules {
		if rule.When != "" {
			applies, err := condition.Eval(rule.When, state.Values())
			if err != nil || !applies {
				continue
			}
		}

		switch rule.Kind {
		case schema.NumericCeiling:
			value, ok := state.Number(rule.Field)
			if !ok {
				continue
			}
			bound, ok := e.bound(rule.Max, rule.Const)
			if ok && value > bound {
				result.addError(rule.Field, numericMessage(rule, doc, fmt.Sprintf("cannot exceed %v", bound)))
			}
		case schema.NumericFloor:
			value, ok := state.Number(rule.Field)
			if !ok {
				continue
			}
			bound, ok := e.bound(rule.Min, rule.Const)
			if ok && value < bound {
				result.addError(rule.Field, numericMessage(rule, doc, fmt.Sprintf("cannot be below %v", bound)))
			}
		case schema.NumericCompare:
			left, okLeft := state.Number(rule.Field)
			right, okRight := state.Number(rule.Related)
			if !okLeft || !okRight {
				continue
			}
			if !compare(left, right, rule.Op) {
				result.addError(rule.Field, numericMessage(rule, doc, fmt.Sprintf("must be %s %s", opPhrase(rule.Op), rule.Related)))
			}
		case schema.NumericSumMax:
			sum, complete := 0.0, true
			for _, name := range rule.Fields {
				value, ok := state.Number(name)
				if !ok {
					complete = false
					break
				}
				sum += value
			}
			if !complete {
				continue
			}
			bound, ok := e.bound(rule.Max, rule.Const)
			if ok && sum > bound {
				field := rule.Fields[0]
				result.addError(field, numericMessage(rule, doc, fmt.Sprintf("combined total cannot exceed %v", bound)))
			}
		}
	}
}

// bound resolves a numeric limit: an inline literal wins, otherwise the
// named legal constant. Unresolvable bounds disable the rule rather than
// failing the user.
func (e *Engine) bound(literal *float64, constName string) (float64, bool) {
	if literal != nil {
		return *literal, true
	}
	if constName != "" {
		return e.consts.Lookup(constName)
	}
	return 0, false
}

func compare(left, right float64, op string) bool {
	switch op {
	case "lt":
		return left < right
	case "lte":
		return left <= right
	case "gt":
		return left > right
	case "gte":
		return left >= right
	default:
		return true
	}
}

func opPhrase(op string) string {
	switch op {
	case "lt":
		return "below"
	case "lte":
		return "at most"
	case "gt":
		return "above"
	case "gte":
		return "at least"
	default:
		return op
	}
}

func numericMessage(rule schema.NumericRule, doc schema.DocumentSchema, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	label := rule.Field
	if field, ok := doc.Field(rule.Field); ok {
		label = field.Label
	}
	return fmt.Sprintf("%s %s", label, fallback)
}

func (e *Engine) sweepCardinality(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, rule := range doc.Cardinality {
		if rule.When != "" {
			applies, err := condition.Eval(rule.When, state.Values())
			if err != nil || !applies {
				continue
			}
		}
		count := 0
		for _, name := range rule.Fields {
			if state.Has(name) {
				count++
			}
		}
		if count >= rule.Min {
			continue
		}
		message := rule.Message
		if message == "" {
			message = fmt.Sprintf("at least %d of these entries are required", rule.Min)
		}
		result.addError(rule.Fields[0], message)
	}
}

func (e *Engine) sweepAdvisories(doc schema.DocumentSchema, state *formstate.State, result *Result) {
	for _, rule := range doc.Advisories {
		if rule.When != "" {
			applies, err := condition.Eval(rule.When, state.Values())
			if err != nil || !applies {
				continue
			}
		}
		value, ok := state.Number(rule.Field)
		if !ok {
			continue
		}
		if rule.Min != nil && value < *rule.Min {
			result.addWarning(rule.Message)
			continue
		}
		if rule.Max != nil && value > *rule.Max {
			result.addWarning(rule.Message)
		}
	}
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
