package record

import "fmt"

// Schema declares the shape of one record type: its tag, the arity window
// for its positional fields, and diagnostic names for each position.
// Positions in [MinFields, MaxFields) are optional trailing fields that may
// be absent from a record without making it invalid.
type Schema struct {
	Tag        Tag
	MinFields  int
	MaxFields  int
	FieldNames []string
}

// FieldName returns the diagnostic name for position i, falling back to a
// positional label when the schema does not name that position.
func (s Schema) FieldName(i int) string {
	if i >= 0 && i < len(s.FieldNames) {
		return s.FieldNames[i]
	}
	return fmt.Sprintf("field %d", i)
}

// Optional reports whether position i lies beyond the mandatory minimum.
func (s Schema) Optional(i int) bool {
	return i >= s.MinFields
}
