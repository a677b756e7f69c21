package domain

// Delivery totals for one household, derived per request from destinations,
// package items and transactions. Never persisted.
type HouseholdAggregate struct {
	HouseholdID18        string
	HouseholdName        string
	ProductPackageIDs    []string
	TotalPoundsDelivered float64
	DeliveryCount        int
}

// Operator-facing counters and dangling references found while reconciling.
type ReconciliationDiagnostics struct {
	TotalDestinations           int
	TotalPackageItems           int
	TotalTransactions           int
	HouseholdsReturned          int
	UnmatchedInventoryRecordIDs []string
	UnmatchedProductPackageIDs  []string
}

type Reconciliation struct {
	Households  []HouseholdAggregate
	Diagnostics ReconciliationDiagnostics
}
