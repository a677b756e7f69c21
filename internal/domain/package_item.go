package domain

// Represents one line item of a product package.
// Both foreign keys must be present for the item to be persisted; the pair is
// the deduplication key.
type PackageItem struct {
	ProductPackageID18         string   `db:"product_package_id_18"`
	ProductInventoryRecordID18 string   `db:"product_inventory_record_id_18"`
	ProductPackageName         *string  `db:"product_package_name"`
	PantryProductName          *string  `db:"pantry_product_name"`
	LotSourceAccountName       *string  `db:"lot_source_account_name"`
	LotFoodRescueProgram       *string  `db:"lot_food_rescue_program"`
	DistributionAmount         *float64 `db:"distribution_amount"`
	PantryProductWeightLbs     *float64 `db:"pantry_product_weight_lbs"`
	DistributionCost           *float64 `db:"distribution_cost"`
}
