package refdata

import (
	"fmt"
	"maps"
	"slices"
)

// Table is an immutable mapping from a key to the set of values associated
// with it. A table is loaded once and only ever read afterwards, so a single
// instance may serve any number of concurrent lookups without locking.
type Table struct {
	entries map[string][]string
}

// New builds a table from the given entries. The input map and its value
// slices are copied, so later mutation by the caller cannot reach the table.
func New(entries map[string][]string) *Table {
	copied := make(map[string][]string, len(entries))
	for key, values := range entries {
		copied[key] = slices.Clone(values)
	}
	return &Table{entries: copied}
}

// Lookup returns the values associated with key. A missing key yields
// ErrKeyNotFound rather than an empty set, since an unrecognized key and a
// key with no associations call for different corrective action.
func (t *Table) Lookup(key string) ([]string, error) {
	values, ok := t.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return slices.Clone(values), nil
}

// Contains reports whether value is associated with key. The two failure
// modes stay distinct: ErrKeyNotFound when the key itself is unknown,
// ErrValueNotFound when the key is known but the value is not among its
// associations.
func (t *Table) Contains(key, value string) error {
	values, ok := t.entries[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if !slices.Contains(values, value) {
		return fmt.Errorf("%w: %q under %q", ErrValueNotFound, value, key)
	}
	return nil
}

// Keys returns the table's keys in sorted order.
func (t *Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Len reports the number of keys in the table.
func (t *Table) Len() int { return len(t.entries) }
