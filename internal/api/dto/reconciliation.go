package dto

import "food-rescue-dashboard/internal/domain"

type HouseholdResponse struct {
	HouseholdID18        string   `json:"householdId18"`
	HouseholdName        string   `json:"householdName"`
	ProductPackageIDs    []string `json:"productPackageIds"`
	TotalPoundsDelivered float64  `json:"totalPoundsDelivered"`
	DeliveryCount        int      `json:"deliveryCount"`
}

type ReconciliationDebug struct {
	TotalDestinations           int      `json:"totalDestinations"`
	TotalPackageItems           int      `json:"totalPackageItems"`
	TotalTransactions           int      `json:"totalTransactions"`
	HouseholdsReturned          int      `json:"householdsReturned"`
	UnmatchedInventoryRecordIDs []string `json:"unmatchedInventoryRecordIds"`
	UnmatchedProductPackageIDs  []string `json:"unmatchedProductPackageIds"`
}

type ReconciliationResponse struct {
	Households []HouseholdResponse `json:"households"`
	Debug      ReconciliationDebug `json:"debug"`
	Error      string              `json:"error,omitempty"`
}

// NewReconciliationError keeps the response shape on failure: no households,
// zeroed counters and an error message.
func NewReconciliationError(msg string) ReconciliationResponse {
	return ReconciliationResponse{
		Households: []HouseholdResponse{},
		Debug: ReconciliationDebug{
			UnmatchedInventoryRecordIDs: []string{},
			UnmatchedProductPackageIDs:  []string{},
		},
		Error: msg,
	}
}

func NewReconciliationResponse(rec domain.Reconciliation) ReconciliationResponse {
	households := make([]HouseholdResponse, 0, len(rec.Households))
	for _, h := range rec.Households {
		ids := h.ProductPackageIDs
		if ids == nil {
			ids = []string{}
		}
		households = append(households, HouseholdResponse{
			HouseholdID18:        h.HouseholdID18,
			HouseholdName:        h.HouseholdName,
			ProductPackageIDs:    ids,
			TotalPoundsDelivered: h.TotalPoundsDelivered,
			DeliveryCount:        h.DeliveryCount,
		})
	}

	d := rec.Diagnostics
	return ReconciliationResponse{
		Households: households,
		Debug: ReconciliationDebug{
			TotalDestinations:           d.TotalDestinations,
			TotalPackageItems:           d.TotalPackageItems,
			TotalTransactions:           d.TotalTransactions,
			HouseholdsReturned:          d.HouseholdsReturned,
			UnmatchedInventoryRecordIDs: nonNil(d.UnmatchedInventoryRecordIDs),
			UnmatchedProductPackageIDs:  nonNil(d.UnmatchedProductPackageIDs),
		},
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
