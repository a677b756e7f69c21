package domain

// Totals for one inventory type (Intake or Distribution).
type InventoryTypeTotals struct {
	InventoryType InventoryType
	Transactions  int
	Amount        float64
	WeightLbs     float64
}

// Intake and distribution pounds at one location.
type LocationTotals struct {
	Location              string
	IntakeWeightLbs       float64
	DistributionWeightLbs float64
}

type InventorySummary struct {
	ByType     []InventoryTypeTotals
	ByLocation []LocationTotals
}
