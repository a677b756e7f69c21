package services

import (
	_ "embed"
	"errors"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"os"

	"gopkg.in/yaml.v3"
)

// Logical field names shared by the alias table and the normalizers.
const (
	fieldDate                   = "date"
	fieldLocation               = "location"
	fieldPantryProductName      = "pantryProductName"
	fieldInventoryType          = "inventoryType"
	fieldAmount                 = "amount"
	fieldProductUnitsForDisplay = "productUnitsForDisplay"
	fieldWeightLbs              = "weightLbs"
	fieldSource                 = "source"
	fieldDestination            = "destination"
	fieldInventoryRecordID      = "productInventoryRecordId18"

	fieldProductPackageName     = "productPackageName"
	fieldLotSourceAccountName   = "lotSourceAccountName"
	fieldLotFoodRescueProgram   = "lotFoodRescueProgram"
	fieldDistributionAmount     = "distributionAmount"
	fieldPantryProductWeightLbs = "pantryProductWeightLbs"
	fieldDistributionCost       = "distributionCost"
	fieldProductPackageID       = "productPackageId18"

	fieldHouseholdName = "householdName"
	fieldHouseholdID   = "householdId18"
)

var schemaFields = map[domain.Schema][]string{
	domain.SchemaTransaction: {
		fieldDate, fieldLocation, fieldPantryProductName, fieldInventoryType, fieldAmount,
		fieldProductUnitsForDisplay, fieldWeightLbs, fieldSource, fieldDestination, fieldInventoryRecordID,
	},
	domain.SchemaPackage: {
		fieldProductPackageName, fieldPantryProductName, fieldLotSourceAccountName, fieldLotFoodRescueProgram,
		fieldDistributionAmount, fieldPantryProductWeightLbs, fieldDistributionCost,
		fieldInventoryRecordID, fieldProductPackageID,
	},
	domain.SchemaDestination: {
		fieldProductPackageName, fieldProductPackageID, fieldHouseholdName, fieldHouseholdID,
	},
}

//go:embed aliases.yaml
var defaultAliasesYAML []byte

// FieldAliases lists candidate header names per schema and logical field.
type FieldAliases map[domain.Schema]map[string][]string

// DefaultFieldAliases returns the built-in alias table.
func DefaultFieldAliases() FieldAliases {
	a, err := parseFieldAliases(defaultAliasesYAML)
	if err != nil {
		panic(fmt.Sprintf("services: embedded aliases.yaml is invalid: %v", err))
	}
	return a
}

// LoadFieldAliases returns the built-in table with any fields named in the
// YAML file at path replacing the defaults. An empty path yields the defaults.
func LoadFieldAliases(path string) (FieldAliases, error) {
	aliases := DefaultFieldAliases()
	if path == "" {
		return aliases, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load field aliases: read %q: %w", path, err)
	}

	override, err := parseFieldAliases(b)
	if err != nil {
		return nil, fmt.Errorf("load field aliases: %q: %w", path, err)
	}
	for schema, fields := range override {
		for field, names := range fields {
			aliases[schema][field] = names
		}
	}

	if err := aliases.validate(); err != nil {
		return nil, fmt.Errorf("load field aliases: %w", err)
	}
	return aliases, nil
}

func parseFieldAliases(b []byte) (FieldAliases, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	out := make(FieldAliases, len(schemaFields))
	for schema := range schemaFields {
		out[schema] = map[string][]string{}
	}

	for name, fields := range raw {
		schema, err := domain.ParseSchema(name)
		if err != nil {
			return nil, err
		}
		for field, names := range fields {
			if !knownField(schema, field) {
				return nil, fmt.Errorf("%s: unknown field %q", schema, field)
			}
			out[schema][field] = names
		}
	}
	return out, nil
}

func knownField(schema domain.Schema, field string) bool {
	for _, f := range schemaFields[schema] {
		if f == field {
			return true
		}
	}
	return false
}

func (a FieldAliases) validate() error {
	var errs []error
	for schema, fields := range schemaFields {
		for _, f := range fields {
			if len(a[schema][f]) == 0 {
				errs = append(errs, fmt.Errorf("%s.%s has no header aliases", schema, f))
			}
		}
	}
	return errors.Join(errs...)
}

// resolver binds the alias table of one schema to Resolve.
type resolver struct {
	aliases map[string][]string
}

func (a FieldAliases) resolver(schema domain.Schema) resolver {
	return resolver{aliases: a[schema]}
}

func (r resolver) get(row domain.RawRow, field string) (string, bool) {
	return Resolve(row, r.aliases[field]...)
}
