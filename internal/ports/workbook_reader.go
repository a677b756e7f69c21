package ports

import (
	"context"
	"food-rescue-dashboard/internal/domain"
	"io"
	"iter"
)

// Contract for turning an uploaded spreadsheet into header-keyed rows.
type WorkbookReader interface {
	// Parse the first sheet of file, using the row at headerRow (0-based) as headers.
	// The returned sequence yields 1-based sheet row numbers with their rows.
	// Unreadable input fails with *domain.ParseError before any row is produced.
	ReadRows(ctx context.Context, file io.Reader, filename string, headerRow int) (iter.Seq2[int, domain.RawRow], error)
}
