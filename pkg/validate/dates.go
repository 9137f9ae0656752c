package validate

import (
	"fmt"
	"math"

	"github.com/qanoonsoft/docwizard/pkg/condition"
	"github.com/qanoonsoft/docwizard/pkg/formstate"
	"github.com/qanoonsoft/docwizard/pkg/schema"
)

// ValidateDates computes the ordering violations for the supplied date
// rules against the current form state. A rule is only evaluated once both
// participating fields have been touched and both parse as dates; a
// half-entered pair is treated as not yet evaluable so the user is not
// shouted at mid-entry. Absence of a required date is the required sweep's
// job, not this one's.
func ValidateDates(rules []schema.DateRule, state *formstate.State) []Error {
	var out []Error
	for _, rule := range rules {
		if rule.When != "" {
			applies, err := condition.Eval(rule.When, state.Values())
			if err != nil || !applies {
				continue
			}
		}

		if !state.Touched(rule.Field) || !state.Touched(rule.Related) {
			continue
		}
		subject, ok := state.Date(rule.Field)
		if !ok {
			continue
		}
		related, ok := state.Date(rule.Related)
		if !ok {
			continue
		}

		violated := false
		switch rule.Relation {
		case schema.RelationNotAfter:
			violated = subject.After(related)
		case schema.RelationNotBefore:
			violated = subject.Before(related)
		case schema.RelationMustBeAfter:
			violated = !subject.After(related)
		case schema.RelationWithinDays:
			days := math.Abs(subject.Sub(related).Hours() / 24)
			violated = days > float64(rule.Days)
		}

		if violated {
			out = append(out, Error{Field: rule.Field, Message: dateMessage(rule)})
		}
	}
	return out
}

func dateMessage(rule schema.DateRule) string {
	if rule.Message != "" {
		return rule.Message
	}
	switch rule.Relation {
	case schema.RelationNotAfter:
		return fmt.Sprintf("%s cannot be after %s", rule.Field, rule.Related)
	case schema.RelationNotBefore:
		return fmt.Sprintf("%s cannot be before %s", rule.Field, rule.Related)
	case schema.RelationMustBeAfter:
		return fmt.Sprintf("%s must be after %s", rule.Field, rule.Related)
	case schema.RelationWithinDays:
		return fmt.Sprintf("%s must be within %d days of %s", rule.Field, rule.Days, rule.Related)
	default:
		return fmt.Sprintf("%s has an invalid date relationship with %s", rule.Field, rule.Related)
	}
}
