package validate

import (
	"errors"

	"github.com/chouzar/contrato/pkg/record"
	"github.com/chouzar/contrato/pkg/refdata"
)

// MemberOf validates that two extracted fields jointly appear in a reference
// table: the value at keyIndex must be a known table key and the value at
// valueIndex must be associated with it. The two failure modes stay
// distinct because they call for different corrective action: an unknown
// key means the key field is wrong, a known key with an unassociated value
// means the value field is.
//
// Either field being absent passes; presence of mandatory fields is the
// arity predicate's concern.
func MemberOf(field string, table *refdata.Table, keyIndex, valueIndex int, keyDesc, valueDesc string) Predicate {
	return Predicate{
		Name: field,
		Check: func(r record.Record) error {
			key, ok := r.Field(keyIndex)
			if !ok {
				return nil
			}
			value, ok := r.Field(valueIndex)
			if !ok {
				return nil
			}

			err := table.Contains(key, value)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, refdata.ErrKeyNotFound):
				return Fail(KindRelationKey, field, "%s %q is not recognized", keyDesc, key)
			default:
				return Fail(KindRelationValue, field, "%s %q is not part of %q", valueDesc, value, key)
			}
		},
	}
}
