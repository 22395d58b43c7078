package record

// Tag identifies a record's logical type.
type Tag string

// Record is an immutable tagged composite of positional string fields.
// The zero value is a record with no tag and no fields.
type Record struct {
	tag    Tag
	fields []string
}

// New builds a record with the given tag and positional fields. The field
// slice is copied, so later mutation of the arguments cannot reach the
// record.
func New(tag Tag, fields ...string) Record {
	copied := make([]string, len(fields))
	copy(copied, fields)
	return Record{tag: tag, fields: copied}
}

// Tag returns the record's discriminant.
func (r Record) Tag() Tag { return r.tag }

// Len reports how many fields the record carries.
func (r Record) Len() int { return len(r.fields) }

// Field returns the field at position i. The second return value reports
// presence: an index beyond the record's field count yields ("", false)
// rather than an error, because absence of an optional trailing field is a
// normal condition that only the caller can judge.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Fields returns a copy of the positional fields.
func (r Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}
