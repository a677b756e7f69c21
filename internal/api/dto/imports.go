package dto

import (
	"food-rescue-dashboard/internal/domain"
	"time"
)

type ImportResponse struct {
	ID           string    `json:"id"`
	Schema       string    `json:"schema"`
	FileName     string    `json:"fileName"`
	RowsRead     int       `json:"rowsRead"`
	RowsValid    int       `json:"rowsValid"`
	RowsRejected int       `json:"rowsRejected"`
	RowsInserted int       `json:"rowsInserted"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListImportsResponse struct {
	Imports []ImportResponse `json:"imports"`
}

func NewListImportsResponse(recs []domain.ImportRecord) ListImportsResponse {
	out := make([]ImportResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, ImportResponse{
			ID:           r.ID,
			Schema:       string(r.Schema),
			FileName:     r.FileName,
			RowsRead:     r.RowsRead,
			RowsValid:    r.RowsValid,
			RowsRejected: r.RowsRejected,
			RowsInserted: r.RowsInserted,
			CreatedAt:    r.CreatedAt,
		})
	}
	return ListImportsResponse{Imports: out}
}
