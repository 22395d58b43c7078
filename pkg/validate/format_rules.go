package validate

import (
	"regexp"

	"github.com/chouzar/contrato/pkg/record"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// DigitsExact validates an optional positional field against an exact-length
// numeric pattern. Absence of the field passes; a present value must be
// exactly length ASCII digits. The field argument names the predicate, the
// description appears in the failure message.
func DigitsExact(field string, index, length int, description string) Predicate {
	return Predicate{
		Name: field,
		Check: func(r record.Record) error {
			value, ok := r.Field(index)
			if !ok {
				return nil
			}
			if len(value) != length || !digitsRegex.MatchString(value) {
				return Fail(KindFormat, field, "%q is not a valid %s", value, description)
			}
			return nil
		},
	}
}

// MatchesPattern validates an optional positional field against a custom
// regular expression. Absence passes; a present value must match.
func MatchesPattern(field string, index int, pattern, description string) Predicate {
	regex := regexp.MustCompile(pattern)
	return Predicate{
		Name: field,
		Check: func(r record.Record) error {
			value, ok := r.Field(index)
			if !ok {
				return nil
			}
			if !regex.MatchString(value) {
				return Fail(KindFormat, field, "%q is not a valid %s", value, description)
			}
			return nil
		},
	}
}

// NotBlank validates that a mandatory positional field, when present, is not
// the empty string. Presence itself is the arity predicate's concern.
func NotBlank(field string, index int, description string) Predicate {
	return Predicate{
		Name: field,
		Check: func(r record.Record) error {
			value, ok := r.Field(index)
			if !ok {
				return nil
			}
			if value == "" {
				return Fail(KindFormat, field, "%s must not be blank", description)
			}
			return nil
		},
	}
}
