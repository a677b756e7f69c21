package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// insertSkippingDuplicates executes query once per row inside a single
// transaction. The query must end in ON CONFLICT ... DO NOTHING, so rows whose
// key already exists affect nothing and are not counted. Any failure rolls the
// whole batch back.
func insertSkippingDuplicates[T any](
	ctx context.Context,
	db *sqlx.DB,
	op string,
	query string,
	rows []T,
	args func(T) []any,
) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("%s: DB is nil", op)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, db.Rebind(query))
	if err != nil {
		return 0, fmt.Errorf("%s: prepare insert: %w", op, err)
	}
	defer stmt.Close()

	inserted := 0
	for i, row := range rows {
		res, err := stmt.ExecContext(ctx, args(row)...)
		if err != nil {
			return 0, fmt.Errorf("%s: insert row #%d: %w", op, i+1, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%s: rows affected: %w", op, err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return inserted, nil
}

var errNilDB = errors.New("DB is nil")
