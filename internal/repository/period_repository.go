package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const periodColumns = `id, period_sequence, period_name, created_at, updated_at`

// PeriodRepository handles period data access.
type PeriodRepository struct {
	table
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(db *sql.DB) *PeriodRepository {
	return &PeriodRepository{table{db: db, name: "periods"}}
}

func scanPeriod(row scanner) (model.Period, error) {
	var p model.Period
	err := row.Scan(&p.ID, &p.Sequence, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// GetByID retrieves a period by ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id int) (*model.Period, error) {
	p, err := scanPeriod(r.db.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM periods WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &p, nil
}

// List returns all periods ordered by sequence.
func (r *PeriodRepository) List(ctx context.Context) ([]model.Period, error) {
	return queryAll(ctx, r.db, scanPeriod,
		`SELECT `+periodColumns+` FROM periods ORDER BY period_sequence, id`)
}

// Create inserts a new period and fills in its id and timestamps.
func (r *PeriodRepository) Create(ctx context.Context, p *model.Period) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO periods (period_sequence, period_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		p.Sequence, p.Name, ts)
	if err != nil {
		return err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies a period's sequence and name.
func (r *PeriodRepository) Update(ctx context.Context, p *model.Period) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE periods SET period_sequence = $1, period_name = $2, updated_at = $3 WHERE id = $4`,
		p.Sequence, p.Name, ts, p.ID); err != nil {
		return err
	}
	p.UpdatedAt = ts
	return nil
}

// Delete removes a period. Periods used by a semester cannot be deleted.
func (r *PeriodRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of periods.
func (r *PeriodRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
