package repositories

import (
	"context"
	"food-rescue-dashboard/internal/domain"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every connection to ":memory:" gets its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(context.Background(), db); err != nil {
		t.Fatalf("second init schema: %v", err)
	}
}

func TestInitSchemaNilDB(t *testing.T) {
	if err := InitSchema(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil DB")
	}
}

func TestInsertDestinationsSkipsExistingKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLDestinationRepository(openTestDB(t))

	dests := []domain.ProductPackageDestination{
		{ProductPackageID18: "P-1", ProductPackageName: "Box", HouseholdName: "Smith", HouseholdID18: "H-1"},
		{ProductPackageID18: "P-2", ProductPackageName: "Bag", HouseholdName: "Jones", HouseholdID18: "H-2"},
	}

	n, err := repo.InsertDestinations(ctx, dests)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got %d", n)
	}

	n, err = repo.InsertDestinations(ctx, dests)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 inserted on re-insert, got %d", n)
	}

	got, err := repo.ListDestinations(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 stored destinations, got %d", len(got))
	}
	if got[0].HouseholdID18 != "H-1" || got[0].ProductPackageName != "Box" {
		t.Fatalf("unexpected first destination: %+v", got[0])
	}
}

func TestInsertPackageItemsUsesCompositeKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLPackageItemRepository(openTestDB(t))

	lbs := 2.5
	items := []domain.PackageItem{
		{ProductPackageID18: "P-1", ProductInventoryRecordID18: "T-1", PantryProductWeightLbs: &lbs},
		{ProductPackageID18: "P-1", ProductInventoryRecordID18: "T-2"},
		{ProductPackageID18: "P-2", ProductInventoryRecordID18: "T-1"},
		{ProductPackageID18: "P-1", ProductInventoryRecordID18: "T-1"},
	}

	n, err := repo.InsertPackageItems(ctx, items)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 inserted, got %d", n)
	}

	got, err := repo.ListPackageItems(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 stored items, got %d", len(got))
	}
	if got[0].PantryProductWeightLbs == nil || *got[0].PantryProductWeightLbs != 2.5 {
		t.Fatalf("expected weight 2.5 on first item, got %v", got[0].PantryProductWeightLbs)
	}
	if got[1].PantryProductWeightLbs != nil {
		t.Fatalf("expected nil weight on second item, got %v", *got[1].PantryProductWeightLbs)
	}
}

func TestInsertTransactionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLTransactionRepository(openTestDB(t))

	weight := 12.0
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	txns := []domain.InventoryTransaction{
		{
			ProductInventoryRecordID18: "T-1",
			Date:                       day,
			Location:                   "Main",
			PantryProductName:          "Apples",
			InventoryType:              domain.InventoryDistribution,
			Amount:                     3,
			WeightLbs:                  &weight,
		},
	}

	for i, want := range []int{1, 0} {
		n, err := repo.InsertTransactions(ctx, txns)
		if err != nil {
			t.Fatalf("insert #%d: %v", i+1, err)
		}
		if n != want {
			t.Fatalf("insert #%d: expected %d inserted, got %d", i+1, want, n)
		}
	}

	got, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(got))
	}
	if got[0].InventoryType != domain.InventoryDistribution {
		t.Fatalf("expected Distribution, got %q", got[0].InventoryType)
	}
	if got[0].WeightLbs == nil || *got[0].WeightLbs != 12 {
		t.Fatalf("expected weight 12, got %v", got[0].WeightLbs)
	}
	if got[0].Source != nil {
		t.Fatalf("expected nil source, got %q", *got[0].Source)
	}
}

func TestInsertEmptyBatchIsNoop(t *testing.T) {
	repo := NewSQLTransactionRepository(openTestDB(t))

	n, err := repo.InsertTransactions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestImportLogListsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLImportLogRepository(openTestDB(t))

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		rec := domain.ImportRecord{
			ID:        id,
			Schema:    domain.SchemaPackage,
			FileName:  id + ".xlsx",
			RowsRead:  i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.RecordImport(ctx, rec); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	got, err := repo.ListImports(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("expected [c b], got [%s %s]", got[0].ID, got[1].ID)
	}
	if got[0].Schema != domain.SchemaPackage {
		t.Fatalf("expected schema %q, got %q", domain.SchemaPackage, got[0].Schema)
	}

	none, err := repo.ListImports(ctx, 0)
	if err != nil {
		t.Fatalf("list zero: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty list, got %d", len(none))
	}
}

func TestNewSQLStoreWiresEveryRepository(t *testing.T) {
	store := NewSQLStore(openTestDB(t))
	if store.Transactions == nil || store.PackageItems == nil || store.Destinations == nil || store.Imports == nil {
		t.Fatalf("expected every repository to be wired: %+v", store)
	}
}
