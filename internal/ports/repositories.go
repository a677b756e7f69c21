package ports

import (
	"context"
	"food-rescue-dashboard/internal/domain"
)

// Port: storage for inventory transactions keyed by ProductInventoryRecordID18.
type TransactionRepository interface {
	// Insert all records in one atomic call, skipping natural-key duplicates.
	// Returns the number of rows actually inserted.
	InsertTransactions(ctx context.Context, txns []domain.InventoryTransaction) (int, error)
	ListTransactions(ctx context.Context) ([]domain.InventoryTransaction, error)
}

// Port: storage for package line items keyed by (package id, inventory record id).
type PackageItemRepository interface {
	InsertPackageItems(ctx context.Context, items []domain.PackageItem) (int, error)
	ListPackageItems(ctx context.Context) ([]domain.PackageItem, error)
}

// Port: storage for package destinations keyed by ProductPackageID18.
type DestinationRepository interface {
	InsertDestinations(ctx context.Context, dests []domain.ProductPackageDestination) (int, error)
	ListDestinations(ctx context.Context) ([]domain.ProductPackageDestination, error)
}

// Port: audit trail of completed uploads.
type ImportLogRepository interface {
	RecordImport(ctx context.Context, rec domain.ImportRecord) error
	// Most recent first.
	ListImports(ctx context.Context, limit int) ([]domain.ImportRecord, error)
}

// Store groups every repository the services need.
type Store struct {
	Transactions TransactionRepository
	PackageItems PackageItemRepository
	Destinations DestinationRepository
	Imports      ImportLogRepository
}
