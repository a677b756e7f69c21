package services

import (
	"food-rescue-dashboard/internal/domain"
	"iter"
	"strings"
)

// DestinationDraft is a normalized destination row before validation.
type DestinationDraft struct {
	Row         int
	Destination domain.ProductPackageDestination
}

// NormalizeDestinations resolves and trims the destination columns of each row.
func NormalizeDestinations(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) []DestinationDraft {
	r := aliases.resolver(domain.SchemaDestination)

	var drafts []DestinationDraft
	for n, row := range rows {
		pkgID, _ := r.get(row, fieldProductPackageID)
		pkgName, _ := r.get(row, fieldProductPackageName)
		hhName, _ := r.get(row, fieldHouseholdName)
		hhID, _ := r.get(row, fieldHouseholdID)

		drafts = append(drafts, DestinationDraft{
			Row: n,
			Destination: domain.ProductPackageDestination{
				ProductPackageID18: strings.TrimSpace(pkgID),
				ProductPackageName: strings.TrimSpace(pkgName),
				HouseholdName:      strings.TrimSpace(hhName),
				HouseholdID18:      strings.TrimSpace(hhID),
			},
		})
	}
	return drafts
}

// IsSummaryRow reports whether a package name marks a report-generated
// subtotal or total line.
func IsSummaryRow(productPackageName string) bool {
	s := strings.ToLower(strings.TrimSpace(productPackageName))
	return strings.HasPrefix(s, "subtotal") || strings.HasPrefix(s, "total")
}

// ValidateDestinations drops summary rows first, then requires the package
// and household fields. No transaction link is needed.
func ValidateDestinations(drafts []DestinationDraft) ([]domain.ProductPackageDestination, []domain.Rejection) {
	valid := make([]domain.ProductPackageDestination, 0, len(drafts))
	var rejected []domain.Rejection

	for _, d := range drafts {
		dest := d.Destination
		if IsSummaryRow(dest.ProductPackageName) {
			rejected = append(rejected, domain.Rejection{Row: d.Row, Reason: "summary row"})
			continue
		}

		var missing []string
		if dest.ProductPackageID18 == "" {
			missing = append(missing, "productPackageId18")
		}
		if dest.ProductPackageName == "" {
			missing = append(missing, "productPackageName")
		}
		if dest.HouseholdName == "" {
			missing = append(missing, "householdName")
		}
		if dest.HouseholdID18 == "" {
			missing = append(missing, "householdId18")
		}
		if len(missing) > 0 {
			rejected = append(rejected, domain.Rejection{Row: d.Row, Reason: missingReason(missing)})
			continue
		}
		valid = append(valid, dest)
	}
	return valid, rejected
}

// PrepareDestinations normalizes and validates a destination sheet in one pass.
func PrepareDestinations(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) Batch[domain.ProductPackageDestination] {
	drafts := NormalizeDestinations(rows, aliases)
	valid, rejected := ValidateDestinations(drafts)

	return Batch[domain.ProductPackageDestination]{
		Records: valid,
		Report: domain.ValidationReport{
			Schema:     domain.SchemaDestination,
			RowsRead:   len(drafts),
			RowsValid:  len(valid),
			Rejections: rejected,
		},
	}
}
