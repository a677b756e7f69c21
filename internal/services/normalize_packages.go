package services

import (
	"food-rescue-dashboard/internal/domain"
	"iter"
	"strings"
)

// PackageDraft is a normalized package line before validation.
type PackageDraft struct {
	Row  int
	Item domain.PackageItem
}

// NormalizePackages resolves and coerces the package columns of each row.
func NormalizePackages(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) []PackageDraft {
	r := aliases.resolver(domain.SchemaPackage)

	var drafts []PackageDraft
	for n, row := range rows {
		pkgID, _ := r.get(row, fieldProductPackageID)
		invID, _ := r.get(row, fieldInventoryRecordID)

		drafts = append(drafts, PackageDraft{
			Row: n,
			Item: domain.PackageItem{
				ProductPackageID18:         strings.TrimSpace(pkgID),
				ProductInventoryRecordID18: strings.TrimSpace(invID),
				ProductPackageName:         optionalString(r.get(row, fieldProductPackageName)),
				PantryProductName:          optionalString(r.get(row, fieldPantryProductName)),
				LotSourceAccountName:       optionalString(r.get(row, fieldLotSourceAccountName)),
				LotFoodRescueProgram:       optionalString(r.get(row, fieldLotFoodRescueProgram)),
				DistributionAmount:         optionalNumber(r.get(row, fieldDistributionAmount)),
				PantryProductWeightLbs:     optionalNumber(r.get(row, fieldPantryProductWeightLbs)),
				DistributionCost:           optionalNumber(r.get(row, fieldDistributionCost)),
			},
		})
	}
	return drafts
}

// ValidatePackages requires both foreign keys. Rows missing a key are
// rejected and the first rows missing each key are listed for the operator.
func ValidatePackages(drafts []PackageDraft) ([]domain.PackageItem, []domain.Rejection, domain.MissingKeyRows) {
	valid := make([]domain.PackageItem, 0, len(drafts))
	var rejected []domain.Rejection
	var missingKeys domain.MissingKeyRows

	for _, d := range drafts {
		var missing []string
		if d.Item.ProductInventoryRecordID18 == "" {
			missing = append(missing, "productInventoryRecordId18")
			if len(missingKeys.InventoryRecordID) < maxMissingKeyRows {
				missingKeys.InventoryRecordID = append(missingKeys.InventoryRecordID, d.Row)
			}
		}
		if d.Item.ProductPackageID18 == "" {
			missing = append(missing, "productPackageId18")
			if len(missingKeys.ProductPackageID) < maxMissingKeyRows {
				missingKeys.ProductPackageID = append(missingKeys.ProductPackageID, d.Row)
			}
		}
		if len(missing) > 0 {
			rejected = append(rejected, domain.Rejection{Row: d.Row, Reason: missingReason(missing)})
			continue
		}
		valid = append(valid, d.Item)
	}
	return valid, rejected, missingKeys
}

// PreparePackages normalizes and validates a package sheet in one pass.
func PreparePackages(rows iter.Seq2[int, domain.RawRow], aliases FieldAliases) Batch[domain.PackageItem] {
	drafts := NormalizePackages(rows, aliases)
	valid, rejected, missingKeys := ValidatePackages(drafts)

	return Batch[domain.PackageItem]{
		Records: valid,
		Report: domain.ValidationReport{
			Schema:      domain.SchemaPackage,
			RowsRead:    len(drafts),
			RowsValid:   len(valid),
			Rejections:  rejected,
			MissingKeys: missingKeys,
		},
	}
}
