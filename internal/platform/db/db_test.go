package db

import (
	"context"
	"testing"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(context.Background(), "sqlite", ":memory:", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.Get(&one, "SELECT 1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if one != 1 {
		t.Fatalf("expected 1, got %d", one)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "dsn", Options{}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
