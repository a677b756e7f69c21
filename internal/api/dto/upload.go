package dto

import "food-rescue-dashboard/internal/domain"

// Rejection lists in responses are cut to this many entries.
const MaxRejectionsInResponse = 50

type UploadDetails struct {
	Schema                       string             `json:"schema"`
	RowsRead                     int                `json:"rowsRead"`
	RowsValid                    int                `json:"rowsValid"`
	RowsRejected                 int                `json:"rowsRejected"`
	Rejections                   []domain.Rejection `json:"rejections"`
	MissingInventoryRecordIDRows []int              `json:"missingInventoryRecordIdRows,omitempty"`
	MissingProductPackageIDRows  []int              `json:"missingProductPackageIdRows,omitempty"`
	ImportID                     string             `json:"importId,omitempty"`
}

type UploadResponse struct {
	Success bool           `json:"success"`
	Count   *int           `json:"count,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details *UploadDetails `json:"details,omitempty"`
}

func NewUploadDetails(report domain.ValidationReport, importID string) *UploadDetails {
	rejections := report.Rejections
	if len(rejections) > MaxRejectionsInResponse {
		rejections = rejections[:MaxRejectionsInResponse]
	}
	if rejections == nil {
		rejections = []domain.Rejection{}
	}

	return &UploadDetails{
		Schema:                       string(report.Schema),
		RowsRead:                     report.RowsRead,
		RowsValid:                    report.RowsValid,
		RowsRejected:                 len(report.Rejections),
		Rejections:                   rejections,
		MissingInventoryRecordIDRows: report.MissingKeys.InventoryRecordID,
		MissingProductPackageIDRows:  report.MissingKeys.ProductPackageID,
		ImportID:                     importID,
	}
}
