package repositories

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the ImportLogRepository port.
type SQLImportLogRepository struct{ DB *sqlx.DB }

func NewSQLImportLogRepository(db *sqlx.DB) *SQLImportLogRepository {
	return &SQLImportLogRepository{DB: db}
}

func (s *SQLImportLogRepository) RecordImport(ctx context.Context, rec domain.ImportRecord) error {
	if s.DB == nil {
		return fmt.Errorf("record import: %w", errNilDB)
	}

	query := s.DB.Rebind(`
	INSERT INTO import_log (
		id,
		schema_name,
		file_name,
		rows_read,
		rows_valid,
		rows_rejected,
		rows_inserted,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	_, err := s.DB.ExecContext(ctx, query,
		rec.ID,
		string(rec.Schema),
		rec.FileName,
		rec.RowsRead,
		rec.RowsValid,
		rec.RowsRejected,
		rec.RowsInserted,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record import id=%s: %w", rec.ID, err)
	}
	return nil
}

// Return the most recent imports first.
func (s *SQLImportLogRepository) ListImports(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("list imports: %w", errNilDB)
	}
	if limit <= 0 {
		return []domain.ImportRecord{}, nil
	}

	query := s.DB.Rebind(`
	SELECT
		id,
		schema_name,
		file_name,
		rows_read,
		rows_valid,
		rows_rejected,
		rows_inserted,
		created_at
	FROM import_log
	ORDER BY created_at DESC, id
	LIMIT ?;
	`)
	recs := make([]domain.ImportRecord, 0, limit)
	if err := s.DB.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, fmt.Errorf("list imports: query import_log table: %w", err)
	}
	return recs, nil
}
