package services

import (
	"food-rescue-dashboard/internal/domain"
	"iter"
	"strings"
	"time"
)

// TransactionDraft is a normalized transaction row before validation.
type TransactionDraft struct {
	Row                        int
	ProductInventoryRecordID18 string
	Date                       *time.Time
	Location                   string
	PantryProductName          string
	InventoryType              domain.InventoryType
	Amount                     *float64
	ProductUnitsForDisplay     *string
	WeightLbs                  *float64
	Source                     *string
	Destination                *string
}

// transactionCarry holds the grouping columns that the export only fills on
// the first row of each group.
type transactionCarry struct {
	date     *time.Time
	location string
}

// stepTransaction is one step of the forward-fill fold.
// A defined cell replaces the carried value; an undefined one reuses it.
func stepTransaction(r resolver, carry transactionCarry, rowNum int, row domain.RawRow) (transactionCarry, TransactionDraft) {
	if raw, ok := r.get(row, fieldDate); ok {
		carry.date = ParseDate(raw)
	}
	if raw, ok := r.get(row, fieldLocation); ok {
		carry.location = strings.TrimSpace(raw)
	}

	id, _ := r.get(row, fieldInventoryRecordID)
	name, _ := r.get(row, fieldPantryProductName)
	kind, _ := r.get(row, fieldInventoryType)

	return carry, TransactionDraft{
		Row:                        rowNum,
		ProductInventoryRecordID18: strings.TrimSpace(id),
		Date:                       carry.date,
		Location:                   carry.location,
		PantryProductName:          strings.TrimSpace(name),
		InventoryType:              parseInventoryType(kind),
		Amount:                     optionalNumber(r.get(row, fieldAmount)),
		ProductUnitsForDisplay:     optionalString(r.get(row, fieldProductUnitsForDisplay)),
		WeightLbs:                  optionalNumber(r.get(row, fieldWeightLbs)),
		Source:                     optionalString(r.get(row, fieldSource)),
		Destination:                optionalString(r.get(row, fieldDestination)),
	}
}

// NormalizeTransactions folds the rows in sheet order. Rows depend on the
// carry of every earlier row, so this must never be split across goroutines.
func NormalizeTransactions(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) []TransactionDraft {
	r := aliases.resolver(domain.SchemaTransaction)

	var carry transactionCarry
	var drafts []TransactionDraft
	for n, row := range rows {
		var d TransactionDraft
		carry, d = stepTransaction(r, carry, n, row)
		drafts = append(drafts, d)
	}
	return drafts
}

// ValidateTransactions keeps drafts carrying every required field.
func ValidateTransactions(drafts []TransactionDraft) ([]domain.InventoryTransaction, []domain.Rejection) {
	valid := make([]domain.InventoryTransaction, 0, len(drafts))
	var rejected []domain.Rejection

	for _, d := range drafts {
		var missing []string
		if d.ProductInventoryRecordID18 == "" {
			missing = append(missing, "productInventoryRecordId18")
		}
		if d.Date == nil {
			missing = append(missing, "date")
		}
		if d.Location == "" {
			missing = append(missing, "location")
		}
		if d.PantryProductName == "" {
			missing = append(missing, "pantryProductName")
		}
		if d.InventoryType == "" {
			missing = append(missing, "inventoryType")
		}
		if d.Amount == nil {
			missing = append(missing, "amount")
		}
		if len(missing) > 0 {
			rejected = append(rejected, domain.Rejection{Row: d.Row, Reason: missingReason(missing)})
			continue
		}

		valid = append(valid, domain.InventoryTransaction{
			ProductInventoryRecordID18: d.ProductInventoryRecordID18,
			Date:                       *d.Date,
			Location:                   d.Location,
			PantryProductName:          d.PantryProductName,
			InventoryType:              d.InventoryType,
			Amount:                     *d.Amount,
			ProductUnitsForDisplay:     d.ProductUnitsForDisplay,
			WeightLbs:                  d.WeightLbs,
			Source:                     d.Source,
			Destination:                d.Destination,
		})
	}
	return valid, rejected
}

// PrepareTransactions runs normalization and validation over one sheet.
func PrepareTransactions(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) Batch[domain.InventoryTransaction] {
	drafts := NormalizeTransactions(rows, aliases)
	valid, rejected := ValidateTransactions(drafts)

	return Batch[domain.InventoryTransaction]{
		Records: valid,
		Report: domain.ValidationReport{
			Schema:     domain.SchemaTransaction,
			RowsRead:   len(drafts),
			RowsValid:  len(valid),
			Rejections: rejected,
		},
	}
}

func parseInventoryType(raw string) domain.InventoryType {
	s := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(s, string(domain.InventoryIntake)):
		return domain.InventoryIntake
	case strings.EqualFold(s, string(domain.InventoryDistribution)):
		return domain.InventoryDistribution
	}
	return ""
}

func missingReason(fields []string) string {
	return "missing " + strings.Join(fields, ", ")
}
