package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

// Format predicates are stateless; the rule engine decides which fields run
// which predicate and whether a failure blocks. Email leans on the
// go-playground validator's built-in email rule; the UAE phone and
// Emirates-ID-or-passport checks are registered as custom validations so the
// same instance serves struct-tag validation elsewhere in the module.

const (
	phonePattern    = `^\+971\s?\d{1,2}\s?\d{3}\s?\d{4}$`
	emiratesPattern = `^784-\d{4}-\d{7}-\d$`
	passportPattern = `^[A-Za-z0-9]{6,9}$`
)

var (
	phoneRe    = regexp.MustCompile(phonePattern)
	emiratesRe = regexp.MustCompile(emiratesPattern)
	passportRe = regexp.MustCompile(passportPattern)

	formats = newFormatValidator()
)

type formatValidator struct {
	v *validator.Validate
}

func newFormatValidator() *formatValidator {
	v := validator.New()
	// Registration only fails for blank tags or nil funcs.
	_ = v.RegisterValidation("uae_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("uae_id", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		return emiratesRe.MatchString(raw) || passportRe.MatchString(raw)
	})
	return &formatValidator{v: v}
}

// Email reports whether raw looks like a localpart@domain.tld address. This
// is the permissive RFC-light shape, not a full RFC 5322 validator. The
// second return is the expected-pattern description for diagnostics.
func Email(raw string) (bool, string) {
	const want = "name@example.com"
	if err := formats.v.Var(strings.TrimSpace(raw), "email"); err != nil {
		return false, want
	}
	return true, want
}

// Phone reports whether raw is a UAE number: the +971 dialing code followed
// by 1-2, 3, and 4 digit groups with optional spaces.
func Phone(raw string) (bool, string) {
	const want = "+971 5X XXX XXXX"
	if err := formats.v.Var(strings.TrimSpace(raw), "uae_phone"); err != nil {
		return false, want
	}
	return true, want
}

// NationalID reports whether raw is a structured Emirates ID
// (784-NNNN-NNNNNNN-N) or a 6-9 character alphanumeric passport code.
func NationalID(raw string) (bool, string) {
	const want = "784-XXXX-XXXXXXX-X or a 6-9 character passport number"
	if err := formats.v.Var(strings.TrimSpace(raw), "uae_id"); err != nil {
		return false, want
	}
	return true, want
}

// formatPredicate maps a schema format tag to its predicate. Unknown tags
// return nil; the schema loader keeps tags within the known set, but
// external schema documents may carry tags this engine version ignores.
func formatPredicate(tag string) func(string) (bool, string) {
	switch tag {
	case schema.FormatEmail:
		return Email
	case schema.FormatPhone:
		return Phone
	case schema.FormatNationalID:
		return NationalID
	default:
		return nil
	}
}
