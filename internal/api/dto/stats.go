package dto

import "food-rescue-dashboard/internal/domain"

type InventoryTypeResponse struct {
	InventoryType string  `json:"inventoryType"`
	Transactions  int     `json:"transactions"`
	Amount        float64 `json:"amount"`
	WeightLbs     float64 `json:"weightLbs"`
}

type LocationResponse struct {
	Location              string  `json:"location"`
	IntakeWeightLbs       float64 `json:"intakeWeightLbs"`
	DistributionWeightLbs float64 `json:"distributionWeightLbs"`
}

type InventoryStatsResponse struct {
	ByType     []InventoryTypeResponse `json:"byType"`
	ByLocation []LocationResponse      `json:"byLocation"`
}

func NewInventoryStatsResponse(s domain.InventorySummary) InventoryStatsResponse {
	res := InventoryStatsResponse{
		ByType:     make([]InventoryTypeResponse, 0, len(s.ByType)),
		ByLocation: make([]LocationResponse, 0, len(s.ByLocation)),
	}
	for _, t := range s.ByType {
		res.ByType = append(res.ByType, InventoryTypeResponse{
			InventoryType: string(t.InventoryType),
			Transactions:  t.Transactions,
			Amount:        t.Amount,
			WeightLbs:     t.WeightLbs,
		})
	}
	for _, l := range s.ByLocation {
		res.ByLocation = append(res.ByLocation, LocationResponse(l))
	}
	return res
}
