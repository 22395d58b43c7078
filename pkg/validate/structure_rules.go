package validate

import "github.com/chouzar/contrato/pkg/record"

// HasShape validates that a record is a non-empty composite whose field
// count does not exceed the schema's arity window.
func HasShape(schema record.Schema) Predicate {
	return Predicate{
		Name: "shape",
		Check: func(r record.Record) error {
			if r.Len() == 0 {
				return Fail(KindShape, "shape", "record has no fields")
			}
			if r.Len() > schema.MaxFields {
				return Fail(KindShape, "shape", "record has %d fields, at most %d allowed for %q", r.Len(), schema.MaxFields, schema.Tag)
			}
			return nil
		},
	}
}

// HasTag validates that the record's discriminant matches the schema's tag.
func HasTag(schema record.Schema) Predicate {
	return Predicate{
		Name: "type_tag",
		Check: func(r record.Record) error {
			if r.Tag() != schema.Tag {
				return Fail(KindTypeTag, "type_tag", "record is tagged %q, expected %q", r.Tag(), schema.Tag)
			}
			return nil
		},
	}
}

// MinFields validates that every mandatory field is present.
func MinFields(schema record.Schema) Predicate {
	return Predicate{
		Name: "arity",
		Check: func(r record.Record) error {
			if r.Len() < schema.MinFields {
				return Fail(KindArity, "arity", "record has %d of %d mandatory fields for %q", r.Len(), schema.MinFields, schema.Tag)
			}
			return nil
		},
	}
}
