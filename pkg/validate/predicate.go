package validate

import "github.com/chouzar/contrato/pkg/record"

// Predicate is a single named check over a record. Check must be pure: it
// never mutates the record, returns nil for a pass, and returns a *Failure
// describing exactly one violated invariant otherwise. One concern per
// predicate keeps every failure message specific and every rule
// independently testable.
type Predicate struct {
	Name  string
	Check func(record.Record) error
}

// Evaluate runs the predicate against r.
func (p Predicate) Evaluate(r record.Record) error {
	return p.Check(r)
}
