package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrFileTooLarge = errors.New("file too large")

// ParseError reports an upload that could not be read as a workbook.
type ParseError struct {
	FileName string
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %q: %s", e.FileName, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Rejection explains why one sheet row was not accepted.
type Rejection struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// MissingKeyRows lists, per foreign key, the first sheet rows that lacked it.
type MissingKeyRows struct {
	InventoryRecordID []int
	ProductPackageID  []int
}

func (m MissingKeyRows) Empty() bool {
	return len(m.InventoryRecordID) == 0 && len(m.ProductPackageID) == 0
}

// ValidationReport is the per-upload diagnostic summary.
type ValidationReport struct {
	Schema      Schema
	RowsRead    int
	RowsValid   int
	Rejections  []Rejection
	MissingKeys MissingKeyRows
}

// ValidationError reports an upload in which no row passed validation.
type ValidationError struct {
	Report ValidationReport
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no valid %s rows in %d rows read", e.Report.Schema, e.Report.RowsRead)
	if ids := e.Report.MissingKeys.InventoryRecordID; len(ids) > 0 {
		fmt.Fprintf(&b, "; rows missing productInventoryRecordId18: %v", ids)
	}
	if ids := e.Report.MissingKeys.ProductPackageID; len(ids) > 0 {
		fmt.Fprintf(&b, "; rows missing productPackageId18: %v", ids)
	}
	return b.String()
}

type UnknownSchemaError struct {
	Value string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("unknown schema %q (expected Transaction, Package or Destination)", e.Value)
}
