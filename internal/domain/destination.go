package domain

// Maps a product package to the household that received it.
type ProductPackageDestination struct {
	ProductPackageID18 string `db:"product_package_id_18"`
	ProductPackageName string `db:"product_package_name"`
	HouseholdName      string `db:"household_name"`
	HouseholdID18      string `db:"household_id_18"`
}
