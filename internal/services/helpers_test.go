package services

import (
	"food-rescue-dashboard/internal/domain"
	"iter"
)

// rowsOf numbers rows from 1 in the order given.
func rowsOf(rows ...domain.RawRow) iter.Seq2[int, domain.RawRow] {
	return func(yield func(int, domain.RawRow) bool) {
		for i, r := range rows {
			if !yield(i+1, r) {
				return
			}
		}
	}
}

func ptr[T any](v T) *T { return &v }
