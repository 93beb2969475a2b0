package repository

import (
	"context"
	"database/sql"
	"time"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryAll runs query and scans every row with scan. An empty result is an
// empty, non-nil slice.
func queryAll[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// table holds the operations every entity table shares.
type table struct {
	db   *sql.DB
	name string
}

func (t table) count(ctx context.Context) (int, error) {
	var n int
	err := t.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+t.name).Scan(&n)
	return n, err
}

func (t table) delete(ctx context.Context, id int) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM `+t.name+` WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err)
	}
	return affected(res)
}

// insert runs an INSERT ... RETURNING id and returns the new id.
func (t table) insert(ctx context.Context, query string, args ...any) (int, error) {
	var id int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, writeErr(err)
	}
	return id, nil
}

// update runs an UPDATE for a single id and reports ErrNotFound when no row matched.
func (t table) update(ctx context.Context, query string, args ...any) error {
	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeErr(err)
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// now is the timestamp written to created_at and updated_at.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
