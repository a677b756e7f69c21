package services

import (
	"context"
	"errors"
	"fmt"
	"food-rescue-dashboard/internal/domain"
	"food-rescue-dashboard/internal/platform/obs"
	"food-rescue-dashboard/internal/ports"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ImportRequest struct {
	Schema   domain.Schema
	FileName string
	File     io.Reader
}

type ImportResult struct {
	ImportID string
	Inserted int
	Report   domain.ValidationReport
}

// ImportFile runs one upload through read, normalize, validate and bulk write.
//
// A file that cannot be parsed or that yields no valid row fails before
// anything is written. Rows whose natural key is already stored are skipped,
// so Inserted may be lower than Report.RowsValid.
func ImportFile(
	ctx context.Context,
	req ImportRequest,
	reader ports.WorkbookReader,
	store ports.Store,
	aliases FieldAliases,
) (_ *ImportResult, err error) {
	defer obs.Time(ctx, "import."+string(req.Schema))(&err)

	if reader == nil {
		return nil, errors.New("import file: workbook reader is nil")
	}
	if aliases == nil {
		aliases = DefaultFieldAliases()
	}

	switch req.Schema {
	case domain.SchemaTransaction, domain.SchemaPackage, domain.SchemaDestination:
	default:
		return nil, &domain.UnknownSchemaError{Value: string(req.Schema)}
	}

	rows, err := reader.ReadRows(ctx, req.File, req.FileName, req.Schema.HeaderRow())
	if err != nil {
		return nil, fmt.Errorf("import file: %w", err)
	}

	var (
		report   domain.ValidationReport
		inserted int
	)

	switch req.Schema {
	case domain.SchemaTransaction:
		batch := PrepareTransactions(rows, aliases)
		report = batch.Report
		if len(batch.Records) == 0 {
			return nil, &domain.ValidationError{Report: report}
		}
		inserted, err = store.Transactions.InsertTransactions(ctx, batch.Records)

	case domain.SchemaPackage:
		batch := PreparePackages(rows, aliases)
		report = batch.Report
		if len(batch.Records) == 0 {
			return nil, &domain.ValidationError{Report: report}
		}
		inserted, err = store.PackageItems.InsertPackageItems(ctx, batch.Records)

	case domain.SchemaDestination:
		batch := PrepareDestinations(rows, aliases)
		report = batch.Report
		if len(batch.Records) == 0 {
			return nil, &domain.ValidationError{Report: report}
		}
		inserted, err = store.Destinations.InsertDestinations(ctx, batch.Records)
	}
	if err != nil {
		return nil, fmt.Errorf("import file: insert %s rows: %w", req.Schema, err)
	}

	res := &ImportResult{
		ImportID: uuid.NewString(),
		Inserted: inserted,
		Report:   report,
	}

	// The rows are already committed; a failed audit entry must not turn the upload into an error.
	if store.Imports != nil {
		rec := domain.ImportRecord{
			ID:           res.ImportID,
			Schema:       req.Schema,
			FileName:     req.FileName,
			RowsRead:     report.RowsRead,
			RowsValid:    report.RowsValid,
			RowsRejected: len(report.Rejections),
			RowsInserted: inserted,
			CreatedAt:    time.Now().UTC(),
		}
		if err := store.Imports.RecordImport(ctx, rec); err != nil {
			zap.L().Warn("record import failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("import_id", rec.ID),
				zap.Error(err),
			)
		}
	}

	return res, nil
}
