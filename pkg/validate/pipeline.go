package validate

import "github.com/chouzar/contrato/pkg/record"

// Pipeline is an ordered list of predicates scoped to one record type.
// Predicates run strictly in declaration order and the first failure halts
// evaluation, so cheap structural checks placed ahead of content checks
// reject malformed input before deeper fields are ever dereferenced.
//
// A pipeline holds no mutable state after construction and is safe for
// concurrent use.
type Pipeline struct {
	schema     record.Schema
	predicates []Predicate
}

// Option configures pipeline construction.
type Option func(*Pipeline)

// With appends predicates to the pipeline in declaration order.
func With(predicates ...Predicate) Option {
	return func(p *Pipeline) {
		p.predicates = append(p.predicates, predicates...)
	}
}

// New builds a pipeline for one record schema. The full predicate list is
// given at the declaration site, so the validation contract of a record
// type is visible in one place rather than assembled ad hoc.
func New(schema record.Schema, opts ...Option) *Pipeline {
	p := &Pipeline{schema: schema}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schema returns the record schema the pipeline is scoped to.
func (p *Pipeline) Schema() record.Schema {
	return p.schema
}

// Predicates returns the ordered predicate names, making the validation
// contract inspectable at runtime.
func (p *Pipeline) Predicates() []string {
	names := make([]string, len(p.predicates))
	for i, pred := range p.predicates {
		names[i] = pred.Name
	}
	return names
}

// Validate runs every predicate in order against r, stopping at the first
// failure. It returns nil only when all predicates pass; otherwise the
// returned error carries the *Failure produced by the first predicate that
// rejected the record.
func (p *Pipeline) Validate(r record.Record) error {
	for _, pred := range p.predicates {
		if err := pred.Check(r); err != nil {
			return err
		}
	}
	return nil
}
