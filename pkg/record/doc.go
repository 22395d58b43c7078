// Package record defines the tagged, fixed-schema composite value that the
// validation packages operate on, together with the Schema type describing
// the declared shape of one record type.
//
// A Record pairs a discriminant Tag with an ordered list of positional
// string fields. Records are immutable: constructors and accessors copy
// field slices, so a record can be shared freely across goroutines.
//
// # Field extraction
//
// Field access is presence-aware rather than error-based:
//
//	value, ok := r.Field(3)
//
// An index beyond the record's field count reports ok == false instead of
// failing, because trailing fields may legitimately be absent. Whether
// absence is acceptable at a given position is a policy decision that
// belongs to the validation pipeline, not to the accessor.
//
// # Schemas
//
// A Schema declares, per record type, the expected tag, the [MinFields,
// MaxFields] arity window, and human-readable names for each position used
// in diagnostics. Fields past MinFields are optional.
package record
