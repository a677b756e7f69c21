package domain

import "strings"

// Schema selects which table an uploaded sheet is loaded into.
type Schema string

const (
	SchemaTransaction Schema = "Transaction"
	SchemaPackage     Schema = "Package"
	SchemaDestination Schema = "Destination"
)

// Schemas lists every accepted schema selector.
var Schemas = []Schema{SchemaTransaction, SchemaPackage, SchemaDestination}

// ParseSchema maps a selector string to a Schema. Only the exact names are
// accepted; surrounding whitespace is ignored.
func ParseSchema(s string) (Schema, error) {
	s = strings.TrimSpace(s)
	for _, sc := range Schemas {
		if s == string(sc) {
			return sc, nil
		}
	}
	return "", &UnknownSchemaError{Value: s}
}

// HeaderRow is the 0-based sheet row holding the column headers.
// The exports carry a report banner above the table, so data never starts at row 0.
func (s Schema) HeaderRow() int {
	switch s {
	case SchemaTransaction:
		return 12
	case SchemaPackage, SchemaDestination:
		return 10
	default:
		return 0
	}
}
