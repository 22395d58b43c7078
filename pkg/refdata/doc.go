// Package refdata provides immutable reference tables consulted by
// cross-field validation predicates, such as a country to allowed-states
// mapping.
//
// Tables are process-wide read-only configuration: build one with New from
// in-code entries, or load one once at startup with ParseYAML or LoadFile,
// then share it freely. No method mutates a table, so no locking is needed
// around concurrent lookups.
//
// # Error semantics
//
// Lookup failures are deliberately split into two sentinel errors because
// they warrant different corrective action by the caller:
//
//   - ErrKeyNotFound: the key itself is unknown (fix the key)
//   - ErrValueNotFound: the key exists but the value is not among its
//     associations (fix the value)
//
// Both are wrapped with the offending values and detectable via errors.Is.
package refdata
