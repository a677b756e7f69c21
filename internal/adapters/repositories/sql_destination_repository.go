package repositories

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the DestinationRepository port.
type SQLDestinationRepository struct{ DB *sqlx.DB }

func NewSQLDestinationRepository(db *sqlx.DB) *SQLDestinationRepository {
	return &SQLDestinationRepository{DB: db}
}

func (s *SQLDestinationRepository) InsertDestinations(
	ctx context.Context,
	dests []domain.ProductPackageDestination,
) (_ int, err error) {
	defer obs.Time(ctx, "destinations.Insert")(&err)

	query := `
	INSERT INTO product_package_destinations (
		product_package_id_18,
		product_package_name,
		household_name,
		household_id_18
	)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (product_package_id_18) DO NOTHING;
	`
	return insertSkippingDuplicates(ctx, s.DB, "insert destinations", query, dests, func(d domain.ProductPackageDestination) []any {
		return []any{d.ProductPackageID18, d.ProductPackageName, d.HouseholdName, d.HouseholdID18}
	})
}

func (s *SQLDestinationRepository) ListDestinations(ctx context.Context) (_ []domain.ProductPackageDestination, err error) {
	defer obs.Time(ctx, "destinations.List")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("list destinations: %w", errNilDB)
	}

	query := `
	SELECT
		product_package_id_18,
		product_package_name,
		household_name,
		household_id_18
	FROM product_package_destinations
	ORDER BY household_id_18, product_package_id_18;
	`
	dests := make([]domain.ProductPackageDestination, 0, 256)
	if err := s.DB.SelectContext(ctx, &dests, query); err != nil {
		return nil, fmt.Errorf("list destinations: query product_package_destinations table: %w", err)
	}

	return dests, nil
}
