package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const semesterSelect = `
	SELECT s.id, s.year_id, s.period_id, s.created_at, s.updated_at, y.year, p.period_name
	FROM semesters s
	JOIN years y ON y.id = s.year_id
	JOIN periods p ON p.id = s.period_id`

const semesterOrder = ` ORDER BY y.year, p.period_sequence, s.id`

// SemesterRepository handles semester data access.
type SemesterRepository struct {
	table
}

// NewSemesterRepository creates a new SemesterRepository.
func NewSemesterRepository(db *sql.DB) *SemesterRepository {
	return &SemesterRepository{table{db: db, name: "semesters"}}
}

func scanSemester(row scanner) (model.Semester, error) {
	var (
		s          model.Semester
		year       int
		periodName string
	)
	if err := row.Scan(&s.ID, &s.YearID, &s.PeriodID, &s.CreatedAt, &s.UpdatedAt, &year, &periodName); err != nil {
		return s, err
	}
	s.Year = model.Ref{Kind: model.KindYear, ID: s.YearID, Label: model.YearLabel(year)}
	s.Period = model.Ref{Kind: model.KindPeriod, ID: s.PeriodID, Label: model.PeriodLabel(periodName)}
	return s, nil
}

// GetByID retrieves a semester with its year and period resolved.
func (r *SemesterRepository) GetByID(ctx context.Context, id int) (*model.Semester, error) {
	s, err := scanSemester(r.db.QueryRowContext(ctx, semesterSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &s, nil
}

// List returns all semesters ordered by year value then period sequence.
func (r *SemesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	return queryAll(ctx, r.db, scanSemester, semesterSelect+semesterOrder)
}

// Create inserts a new semester. A duplicate year and period pair returns ErrConstraintViolation.
func (r *SemesterRepository) Create(ctx context.Context, s *model.Semester) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO semesters (year_id, period_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		s.YearID, s.PeriodID, ts)
	if err != nil {
		return err
	}
	s.ID, s.CreatedAt, s.UpdatedAt = id, ts, ts
	return nil
}

// Update points a semester at a different year or period.
func (r *SemesterRepository) Update(ctx context.Context, s *model.Semester) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE semesters SET year_id = $1, period_id = $2, updated_at = $3 WHERE id = $4`,
		s.YearID, s.PeriodID, ts, s.ID); err != nil {
		return err
	}
	s.UpdatedAt = ts
	return nil
}

// Delete removes a semester.
func (r *SemesterRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of semesters.
func (r *SemesterRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
