package repositories

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the TransactionRepository port.
type SQLTransactionRepository struct{ DB *sqlx.DB }

func NewSQLTransactionRepository(db *sqlx.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{DB: db}
}

func (s *SQLTransactionRepository) InsertTransactions(
	ctx context.Context,
	txns []domain.InventoryTransaction,
) (_ int, err error) {
	defer obs.Time(ctx, "transactions.Insert")(&err)

	query := `
	INSERT INTO inventory_transactions (
		product_inventory_record_id_18,
		txn_date,
		location,
		pantry_product_name,
		inventory_type,
		amount,
		product_units_for_display,
		weight_lbs,
		source,
		destination
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (product_inventory_record_id_18) DO NOTHING;
	`
	return insertSkippingDuplicates(ctx, s.DB, "insert transactions", query, txns, func(t domain.InventoryTransaction) []any {
		return []any{
			t.ProductInventoryRecordID18,
			t.Date,
			t.Location,
			t.PantryProductName,
			string(t.InventoryType),
			t.Amount,
			t.ProductUnitsForDisplay,
			t.WeightLbs,
			t.Source,
			t.Destination,
		}
	})
}

// Return every stored transaction ordered by date.
func (s *SQLTransactionRepository) ListTransactions(ctx context.Context) (_ []domain.InventoryTransaction, err error) {
	defer obs.Time(ctx, "transactions.List")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("list transactions: %w", errNilDB)
	}

	query := `
	SELECT
		product_inventory_record_id_18,
		txn_date,
		location,
		pantry_product_name,
		inventory_type,
		amount,
		product_units_for_display,
		weight_lbs,
		source,
		destination
	FROM inventory_transactions
	ORDER BY txn_date, product_inventory_record_id_18;
	`
	txns := make([]domain.InventoryTransaction, 0, 256)
	if err := s.DB.SelectContext(ctx, &txns, query); err != nil {
		return nil, fmt.Errorf("list transactions: query inventory_transactions table: %w", err)
	}

	return txns, nil
}
