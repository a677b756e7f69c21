package repositories

import (
	"food-rescue-dashboard/internal/ports"

	"github.com/jmoiron/sqlx"
)

// NewSQLStore wires every SQL repository over one connection pool.
func NewSQLStore(db *sqlx.DB) ports.Store {
	return ports.Store{
		Transactions: NewSQLTransactionRepository(db),
		PackageItems: NewSQLPackageItemRepository(db),
		Destinations: NewSQLDestinationRepository(db),
		Imports:      NewSQLImportLogRepository(db),
	}
}
