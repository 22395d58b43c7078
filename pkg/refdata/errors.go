package refdata

import "errors"

// Package-specific errors
var (
	// ErrKeyNotFound is returned when a lookup key has no entry in the table.
	ErrKeyNotFound = errors.New("key not recognized")

	// ErrValueNotFound is returned when the key exists but the value is not associated with it.
	ErrValueNotFound = errors.New("value not associated with key")

	// ErrEmptyTable is returned when a parsed document contains no entries.
	ErrEmptyTable = errors.New("reference table has no entries")
)
