package validate

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure by which invariant was violated.
type Kind string

const (
	// KindShape marks a record that is not a composite within the expected arity window.
	KindShape Kind = "shape"
	// KindTypeTag marks a record whose discriminant does not match the expected tag.
	KindTypeTag Kind = "type_tag"
	// KindArity marks a record missing mandatory fields.
	KindArity Kind = "arity"
	// KindFormat marks an optional field that is present but malformed.
	KindFormat Kind = "format"
	// KindRelationKey marks a lookup key with no entry in the reference table.
	KindRelationKey Kind = "relation_key"
	// KindRelationValue marks a known lookup key whose dependent value is not associated with it.
	KindRelationValue Kind = "relation_value"
)

// Failure describes a single predicate failure. A nil error from a predicate
// or pipeline means the record is valid; a *Failure is the structured
// invalid outcome, carrying the failure kind, the name of the predicate that
// produced it, and a human-readable reason echoing the offending value.
type Failure struct {
	Kind      Kind
	Predicate string
	Reason    string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Predicate, f.Reason)
}

// Fail builds a failure outcome for the named predicate.
func Fail(kind Kind, predicate, format string, args ...any) *Failure {
	return &Failure{
		Kind:      kind,
		Predicate: predicate,
		Reason:    fmt.Sprintf(format, args...),
	}
}

// AsFailure extracts the structured failure from an error, if it carries one.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

// IsFailure reports whether err is a validation failure, as opposed to a
// host-level error.
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}

// KindOf returns the failure kind carried by err, or the empty Kind when err
// is nil or not a validation failure.
func KindOf(err error) Kind {
	if failure, ok := AsFailure(err); ok {
		return failure.Kind
	}
	return ""
}
