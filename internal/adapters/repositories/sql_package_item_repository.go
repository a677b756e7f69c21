package repositories

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the PackageItemRepository port.
type SQLPackageItemRepository struct{ DB *sqlx.DB }

func NewSQLPackageItemRepository(db *sqlx.DB) *SQLPackageItemRepository {
	return &SQLPackageItemRepository{DB: db}
}

func (s *SQLPackageItemRepository) InsertPackageItems(
	ctx context.Context,
	items []domain.PackageItem,
) (_ int, err error) {
	defer obs.Time(ctx, "package_items.Insert")(&err)

	query := `
	INSERT INTO package_items (
		product_package_id_18,
		product_inventory_record_id_18,
		product_package_name,
		pantry_product_name,
		lot_source_account_name,
		lot_food_rescue_program,
		distribution_amount,
		pantry_product_weight_lbs,
		distribution_cost
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (product_package_id_18, product_inventory_record_id_18) DO NOTHING;
	`
	return insertSkippingDuplicates(ctx, s.DB, "insert package items", query, items, func(p domain.PackageItem) []any {
		return []any{
			p.ProductPackageID18,
			p.ProductInventoryRecordID18,
			p.ProductPackageName,
			p.PantryProductName,
			p.LotSourceAccountName,
			p.LotFoodRescueProgram,
			p.DistributionAmount,
			p.PantryProductWeightLbs,
			p.DistributionCost,
		}
	})
}

func (s *SQLPackageItemRepository) ListPackageItems(ctx context.Context) (_ []domain.PackageItem, err error) {
	defer obs.Time(ctx, "package_items.List")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("list package items: %w", errNilDB)
	}

	query := `
	SELECT
		product_package_id_18,
		product_inventory_record_id_18,
		product_package_name,
		pantry_product_name,
		lot_source_account_name,
		lot_food_rescue_program,
		distribution_amount,
		pantry_product_weight_lbs,
		distribution_cost
	FROM package_items
	ORDER BY product_package_id_18, product_inventory_record_id_18;
	`
	items := make([]domain.PackageItem, 0, 256)
	if err := s.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list package items: query package_items table: %w", err)
	}

	return items, nil
}
