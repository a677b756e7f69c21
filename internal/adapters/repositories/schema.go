package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The DDL sticks to types and clauses understood by both PostgreSQL and SQLite.
var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS inventory_transactions (
		product_inventory_record_id_18 TEXT PRIMARY KEY,
		txn_date DATE NOT NULL,
		location TEXT NOT NULL,
		pantry_product_name TEXT NOT NULL,
		inventory_type TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		product_units_for_display TEXT,
		weight_lbs DOUBLE PRECISION,
		source TEXT,
		destination TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS package_items (
		product_package_id_18 TEXT NOT NULL,
		product_inventory_record_id_18 TEXT NOT NULL,
		product_package_name TEXT,
		pantry_product_name TEXT,
		lot_source_account_name TEXT,
		lot_food_rescue_program TEXT,
		distribution_amount DOUBLE PRECISION,
		pantry_product_weight_lbs DOUBLE PRECISION,
		distribution_cost DOUBLE PRECISION,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (product_package_id_18, product_inventory_record_id_18)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS product_package_destinations (
		product_package_id_18 TEXT PRIMARY KEY,
		product_package_name TEXT NOT NULL,
		household_name TEXT NOT NULL,
		household_id_18 TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS import_log (
		id TEXT PRIMARY KEY,
		schema_name TEXT NOT NULL,
		file_name TEXT NOT NULL,
		rows_read INTEGER NOT NULL,
		rows_valid INTEGER NOT NULL,
		rows_rejected INTEGER NOT NULL,
		rows_inserted INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`,
	`CREATE INDEX IF NOT EXISTS idx_destinations_household ON product_package_destinations (household_id_18);`,
	`CREATE INDEX IF NOT EXISTS idx_package_items_inventory ON package_items (product_inventory_record_id_18);`,
	`CREATE INDEX IF NOT EXISTS idx_import_log_created_at ON import_log (created_at);`,
}

// Initialize the database schema. Safe to run repeatedly.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
