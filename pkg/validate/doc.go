// Package validate provides a fail-fast validation pipeline for tagged
// records: an ordered list of named predicates run against one record,
// stopping at the first failure and reporting which predicate failed, why,
// and which invariant kind was violated.
//
// # Architecture
//
// Core building blocks:
//   - Predicate – a named pure check, one concern and one message each
//   - Failure   – structured invalid outcome carrying Kind, predicate name,
//     and a reason echoing the offending value
//   - Pipeline  – ordered predicates scoped to one record schema, evaluated
//     strictly in declaration order with fail-fast short-circuiting
//
// Built-in predicate families live in one file per concern, mirroring how
// validation rules grow in practice: structure_rules.go (shape, type tag,
// arity), format_rules.go (exact-length digits, custom patterns), and
// relation_rules.go (cross-field membership in a reference table).
//
// Validity is expressed as a plain error return: nil means valid, a
// *Failure means invalid. Validation failure is always a returned value for
// the caller to act on, never a panic; use AsFailure, IsFailure, or KindOf
// to inspect the structured outcome.
//
// # Usage
//
//	pipeline := validate.New(schema, validate.With(
//	    validate.HasShape(schema),
//	    validate.HasTag(schema),
//	    validate.MinFields(schema),
//	    validate.DigitsExact("zip_code", 3, 5, "zip code"),
//	))
//	if err := pipeline.Validate(rec); err != nil {
//	    failure, _ := validate.AsFailure(err)
//	    // failure.Kind, failure.Predicate, failure.Reason
//	}
//
// Structural checks belong ahead of content checks in every pipeline: the
// most fundamental error surfaces first, and no predicate dereferences a
// field that a cheaper check would have rejected.
//
// All components are stateless pure evaluators over immutable inputs, so
// pipelines are safe to share across goroutines without coordination.
package validate
