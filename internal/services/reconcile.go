package services

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Reconcile loads the three tables concurrently and joins them into
// per-household delivery totals.
func Reconcile(ctx context.Context, store ports.Store) (_ *domain.Reconciliation, err error) {
	defer obs.Time(ctx, "reconcile")(&err)

	var (
		dests []domain.ProductPackageDestination
		items []domain.PackageItem
		txns  []domain.InventoryTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if dests, err = store.Destinations.ListDestinations(gctx); err != nil {
			return fmt.Errorf("reconcile: list destinations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if items, err = store.PackageItems.ListPackageItems(gctx); err != nil {
			return fmt.Errorf("reconcile: list package items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if txns, err = store.Transactions.ListTransactions(gctx); err != nil {
			return fmt.Errorf("reconcile: list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rec := AggregateHouseholds(dests, items, txns)
	return &rec, nil
}

type householdGroup struct {
	id         string
	name       string
	packageIDs map[string]struct{}
	txnIDs     map[string]struct{}
	pounds     decimal.Decimal
}

// orderedSet keeps unique strings in first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// AggregateHouseholds is an outer join of destinations, package items and
// transactions, rooted at households.
//
// Every destination yields a household, even with no matched package; its
// package ids are those of the package items that matched one of its
// destinations.
// Package items without a destination, and transaction references without a
// transaction, are reported in the diagnostics instead of failing the join.
// A missing weight counts as 0 in the total. DeliveryCount is the number of
// distinct transactions, not the number of package lines.
func AggregateHouseholds(
	dests []domain.ProductPackageDestination,
	items []domain.PackageItem,
	txns []domain.InventoryTransaction,
) domain.Reconciliation {
	groups := make(map[string]*householdGroup)
	destByPackage := make(map[string]domain.ProductPackageDestination, len(dests))

	for _, d := range dests {
		g, ok := groups[d.HouseholdID18]
		if !ok {
			g = &householdGroup{
				id:         d.HouseholdID18,
				name:       d.HouseholdName,
				packageIDs: map[string]struct{}{},
				txnIDs:     map[string]struct{}{},
				pounds:     decimal.Zero,
			}
			groups[d.HouseholdID18] = g
		}
		if _, ok := destByPackage[d.ProductPackageID18]; !ok {
			destByPackage[d.ProductPackageID18] = d
		}
	}

	txnIDs := make(map[string]struct{}, len(txns))
	for _, t := range txns {
		txnIDs[t.ProductInventoryRecordID18] = struct{}{}
	}

	unmatchedPackages := newOrderedSet()
	unmatchedInventory := newOrderedSet()

	for _, item := range items {
		d, ok := destByPackage[item.ProductPackageID18]
		if !ok {
			unmatchedPackages.add(item.ProductPackageID18)
			continue
		}
		g := groups[d.HouseholdID18]
		g.packageIDs[item.ProductPackageID18] = struct{}{}

		if item.PantryProductWeightLbs != nil {
			g.pounds = g.pounds.Add(decimal.NewFromFloat(*item.PantryProductWeightLbs))
		}

		if id := item.ProductInventoryRecordID18; id != "" {
			if _, ok := txnIDs[id]; ok {
				g.txnIDs[id] = struct{}{}
			} else {
				unmatchedInventory.add(id)
			}
		}
	}

	households := make([]domain.HouseholdAggregate, 0, len(groups))
	for _, g := range groups {
		pkgIDs := make([]string, 0, len(g.packageIDs))
		for id := range g.packageIDs {
			pkgIDs = append(pkgIDs, id)
		}
		slices.Sort(pkgIDs)

		households = append(households, domain.HouseholdAggregate{
			HouseholdID18:        g.id,
			HouseholdName:        g.name,
			ProductPackageIDs:    pkgIDs,
			TotalPoundsDelivered: g.pounds.InexactFloat64(),
			DeliveryCount:        len(g.txnIDs),
		})
	}
	slices.SortFunc(households, func(a, b domain.HouseholdAggregate) int {
		if c := strings.Compare(a.HouseholdName, b.HouseholdName); c != 0 {
			return c
		}
		return strings.Compare(a.HouseholdID18, b.HouseholdID18)
	})

	return domain.Reconciliation{
		Households: households,
		Diagnostics: domain.ReconciliationDiagnostics{
			TotalDestinations:           len(dests),
			TotalPackageItems:           len(items),
			TotalTransactions:           len(txns),
			HouseholdsReturned:          len(households),
			UnmatchedInventoryRecordIDs: unmatchedInventory.items,
			UnmatchedProductPackageIDs:  unmatchedPackages.items,
		},
	}
}
