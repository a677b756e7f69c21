package domain

// RawRow maps a sheet column header to the raw text of one cell.
// Blank cells are absent, so a missing key means the cell was undefined.
type RawRow map[string]string
