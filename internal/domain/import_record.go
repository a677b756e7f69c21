package domain

import "time"

// Audit entry written after every successful upload.
type ImportRecord struct {
	ID           string    `db:"id"`
	Schema       Schema    `db:"schema_name"`
	FileName     string    `db:"file_name"`
	RowsRead     int       `db:"rows_read"`
	RowsValid    int       `db:"rows_valid"`
	RowsRejected int       `db:"rows_rejected"`
	RowsInserted int       `db:"rows_inserted"`
	CreatedAt    time.Time `db:"created_at"`
}
