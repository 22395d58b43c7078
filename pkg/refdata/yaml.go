package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a table from a YAML document mapping each key to a
// sequence of values:
//
//	America:
//	  - Washington
//	  - Oregon
//	México:
//	  - Baja California
func ParseYAML(data []byte) (*Table, error) {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	return New(entries), nil
}

// LoadFile reads and parses a YAML reference table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}
	return ParseYAML(data)
}
