package domain

import (
	"errors"
	"testing"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		in   string
		want Schema
	}{
		{"Transaction", SchemaTransaction},
		{"Package", SchemaPackage},
		{"Destination", SchemaDestination},
		{" Destination ", SchemaDestination},
	}
	for _, tt := range tests {
		got, err := ParseSchema(tt.in)
		if err != nil {
			t.Fatalf("ParseSchema(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSchema(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSchemaRequiresExactName(t *testing.T) {
	for _, in := range []string{"transaction", "PACKAGE", "destinations", ""} {
		var use *UnknownSchemaError
		if _, err := ParseSchema(in); !errors.As(err, &use) {
			t.Errorf("ParseSchema(%q): expected UnknownSchemaError, got %v", in, err)
		}
	}
}

func TestParseSchemaUnknown(t *testing.T) {
	_, err := ParseSchema("Households")
	var use *UnknownSchemaError
	if !errors.As(err, &use) {
		t.Fatalf("expected UnknownSchemaError, got %v", err)
	}
	if use.Value != "Households" {
		t.Errorf("Value = %q, want Households", use.Value)
	}
}

func TestHeaderRow(t *testing.T) {
	if got := SchemaTransaction.HeaderRow(); got != 12 {
		t.Errorf("transaction header row = %d, want 12", got)
	}
	if got := SchemaPackage.HeaderRow(); got != 10 {
		t.Errorf("package header row = %d, want 10", got)
	}
	if got := SchemaDestination.HeaderRow(); got != 10 {
		t.Errorf("destination header row = %d, want 10", got)
	}
}
