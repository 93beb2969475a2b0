package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const yearColumns = `id, year, created_at, updated_at`

// YearRepository handles year data access.
type YearRepository struct {
	table
}

// NewYearRepository creates a new YearRepository.
func NewYearRepository(db *sql.DB) *YearRepository {
	return &YearRepository{table{db: db, name: "years"}}
}

func scanYear(row scanner) (model.Year, error) {
	var y model.Year
	err := row.Scan(&y.ID, &y.Year, &y.CreatedAt, &y.UpdatedAt)
	return y, err
}

// GetByID retrieves a year by ID.
func (r *YearRepository) GetByID(ctx context.Context, id int) (*model.Year, error) {
	y, err := scanYear(r.db.QueryRowContext(ctx,
		`SELECT `+yearColumns+` FROM years WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &y, nil
}

// List returns all years in ascending order.
func (r *YearRepository) List(ctx context.Context) ([]model.Year, error) {
	return queryAll(ctx, r.db, scanYear,
		`SELECT `+yearColumns+` FROM years ORDER BY year, id`)
}

// Create inserts a new year.
func (r *YearRepository) Create(ctx context.Context, y *model.Year) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO years (year, created_at, updated_at) VALUES ($1, $2, $2) RETURNING id`,
		y.Year, ts)
	if err != nil {
		return err
	}
	y.ID, y.CreatedAt, y.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies a year's value.
func (r *YearRepository) Update(ctx context.Context, y *model.Year) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE years SET year = $1, updated_at = $2 WHERE id = $3`,
		y.Year, ts, y.ID); err != nil {
		return err
	}
	y.UpdatedAt = ts
	return nil
}

// Delete removes a year.
func (r *YearRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of years.
func (r *YearRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
