package memory

import (
	"context"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/ports"
	"slices"
	"sync"
)

// Store is an in-process implementation of every repository port.
// Inserts honour the same natural keys as the SQL schema. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	txns    []domain.InventoryTransaction
	txnKeys map[string]struct{}

	items    []domain.PackageItem
	itemKeys map[[2]string]struct{}

	dests    []domain.ProductPackageDestination
	destKeys map[string]struct{}

	imports []domain.ImportRecord
}

func NewStore() *Store {
	return &Store{
		txnKeys:  map[string]struct{}{},
		itemKeys: map[[2]string]struct{}{},
		destKeys: map[string]struct{}{},
	}
}

// Ports exposes the store through the ports.Store bundle.
func (s *Store) Ports() ports.Store {
	return ports.Store{
		Transactions: s,
		PackageItems: s,
		Destinations: s,
		Imports:      s,
	}
}

func (s *Store) InsertTransactions(ctx context.Context, txns []domain.InventoryTransaction) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range txns {
		if _, ok := s.txnKeys[t.ProductInventoryRecordID18]; ok {
			continue
		}
		s.txnKeys[t.ProductInventoryRecordID18] = struct{}{}
		s.txns = append(s.txns, t)
		n++
	}
	return n, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.InventoryTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.txns), nil
}

func (s *Store) InsertPackageItems(ctx context.Context, items []domain.PackageItem) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range items {
		key := [2]string{it.ProductPackageID18, it.ProductInventoryRecordID18}
		if _, ok := s.itemKeys[key]; ok {
			continue
		}
		s.itemKeys[key] = struct{}{}
		s.items = append(s.items, it)
		n++
	}
	return n, nil
}

func (s *Store) ListPackageItems(ctx context.Context) ([]domain.PackageItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *Store) InsertDestinations(ctx context.Context, dests []domain.ProductPackageDestination) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, d := range dests {
		if _, ok := s.destKeys[d.ProductPackageID18]; ok {
			continue
		}
		s.destKeys[d.ProductPackageID18] = struct{}{}
		s.dests = append(s.dests, d)
		n++
	}
	return n, nil
}

func (s *Store) ListDestinations(ctx context.Context) ([]domain.ProductPackageDestination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.dests), nil
}

func (s *Store) RecordImport(ctx context.Context, rec domain.ImportRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports = append(s.imports, rec)
	return nil
}

func (s *Store) ListImports(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []domain.ImportRecord{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ImportRecord, 0, min(limit, len(s.imports)))
	for i := len(s.imports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.imports[i])
	}
	return out, nil
}
