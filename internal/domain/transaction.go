package domain

import "time"

// InventoryType classifies an inventory movement.
type InventoryType string

const (
	InventoryIntake       InventoryType = "Intake"
	InventoryDistribution InventoryType = "Distribution"
)

// Represents one inventory movement from the transaction export.
// ProductInventoryRecordID18 is the natural key; records are never mutated after insert.
type InventoryTransaction struct {
	ProductInventoryRecordID18 string        `db:"product_inventory_record_id_18"`
	Date                       time.Time     `db:"txn_date"`
	Location                   string        `db:"location"`
	PantryProductName          string        `db:"pantry_product_name"`
	InventoryType              InventoryType `db:"inventory_type"`
	Amount                     float64       `db:"amount"`
	ProductUnitsForDisplay     *string       `db:"product_units_for_display"`
	WeightLbs                  *float64      `db:"weight_lbs"`
	Source                     *string       `db:"source"`
	Destination                *string       `db:"destination"`
}
