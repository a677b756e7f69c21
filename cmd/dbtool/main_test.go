package main

import (
	"bytes"
	"encoding/json"
	"food-rescue-dashboard/internal/api/dto"
	"food-rescue-dashboard/internal/config"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runDBTool(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "sqlite", Path: dbPath}}
	cmd := newRootCmd(cfg)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestImportThenReconcile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")

	banner := strings.Repeat("Destination report\n", 10)
	file := filepath.Join(dir, "destinations.csv")
	body := banner + "Product Package Name,Product Package ID (18),Household Name,Household ID (18)\n" +
		"Weekly box,P-1,Smith,H-1\n"
	if err := os.WriteFile(file, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := runDBTool(t, dbPath, "migrate"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	out, err := runDBTool(t, dbPath, "import", "--schema", "Destination", file)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "inserted=1") {
		t.Fatalf("expected one inserted row, got %q", out)
	}

	out, err = runDBTool(t, dbPath, "reconcile")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	var res dto.ReconciliationResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode reconcile output %q: %v", out, err)
	}
	if len(res.Households) != 1 || res.Households[0].HouseholdName != "Smith" {
		t.Fatalf("unexpected households %+v", res.Households)
	}
}

func TestImportRequiresSchema(t *testing.T) {
	if _, err := runDBTool(t, filepath.Join(t.TempDir(), "app.db"), "import", "x.csv"); err == nil {
		t.Fatalf("expected error without --schema")
	}
}
