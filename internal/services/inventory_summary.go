package services

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/ports"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SummarizeInventory totals stored transactions for the dashboard charts.
func SummarizeInventory(ctx context.Context, repo ports.TransactionRepository) (*domain.InventorySummary, error) {
	txns, err := repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize inventory: list transactions: %w", err)
	}

	s := BuildInventorySummary(txns)
	return &s, nil
}

type typeAcc struct {
	count  int
	amount decimal.Decimal
	weight decimal.Decimal
}

type locationAcc struct {
	intake       decimal.Decimal
	distribution decimal.Decimal
}

// BuildInventorySummary sums amounts and weights per inventory type and the
// intake and distribution weight per location. Missing weights count as 0.
func BuildInventorySummary(txns []domain.InventoryTransaction) domain.InventorySummary {
	types := []domain.InventoryType{domain.InventoryIntake, domain.InventoryDistribution}
	byType := map[domain.InventoryType]*typeAcc{}
	for _, t := range types {
		byType[t] = &typeAcc{}
	}
	byLocation := map[string]*locationAcc{}

	for _, t := range txns {
		acc, ok := byType[t.InventoryType]
		if !ok {
			continue
		}

		weight := decimal.Zero
		if t.WeightLbs != nil {
			weight = decimal.NewFromFloat(*t.WeightLbs)
		}
		acc.count++
		acc.amount = acc.amount.Add(decimal.NewFromFloat(t.Amount))
		acc.weight = acc.weight.Add(weight)

		loc, ok := byLocation[t.Location]
		if !ok {
			loc = &locationAcc{}
			byLocation[t.Location] = loc
		}
		if t.InventoryType == domain.InventoryIntake {
			loc.intake = loc.intake.Add(weight)
		} else {
			loc.distribution = loc.distribution.Add(weight)
		}
	}

	out := domain.InventorySummary{
		ByType:     make([]domain.InventoryTypeTotals, 0, len(types)),
		ByLocation: make([]domain.LocationTotals, 0, len(byLocation)),
	}
	for _, t := range types {
		acc := byType[t]
		out.ByType = append(out.ByType, domain.InventoryTypeTotals{
			InventoryType: t,
			Transactions:  acc.count,
			Amount:        acc.amount.InexactFloat64(),
			WeightLbs:     acc.weight.InexactFloat64(),
		})
	}
	for name, loc := range byLocation {
		out.ByLocation = append(out.ByLocation, domain.LocationTotals{
			Location:              name,
			IntakeWeightLbs:       loc.intake.InexactFloat64(),
			DistributionWeightLbs: loc.distribution.InexactFloat64(),
		})
	}
	slices.SortFunc(out.ByLocation, func(a, b domain.LocationTotals) int {
		return strings.Compare(a.Location, b.Location)
	})

	return out
}
