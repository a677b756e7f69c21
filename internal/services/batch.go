package services

import "food-rescue-dashboard/internal/domain"

// Batch is the validated output of one uploaded sheet.
type Batch[T any] struct {
	Records []T
	Report  domain.ValidationReport
}

// Rows missing a key are listed up to this many per key.
const maxMissingKeyRows = 10
