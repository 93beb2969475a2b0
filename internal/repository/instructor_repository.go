package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const personColumns = `id, first_name, last_name, created_at, updated_at`

// InstructorRepository handles instructor data access.
type InstructorRepository struct {
	table
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(db *sql.DB) *InstructorRepository {
	return &InstructorRepository{table{db: db, name: "instructors"}}
}

func scanInstructor(row scanner) (model.Instructor, error) {
	var i model.Instructor
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

// GetByID retrieves an instructor by ID.
func (r *InstructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	i, err := scanInstructor(r.db.QueryRowContext(ctx,
		`SELECT `+personColumns+` FROM instructors WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &i, nil
}

// List returns all instructors ordered by last then first name.
func (r *InstructorRepository) List(ctx context.Context) ([]model.Instructor, error) {
	return queryAll(ctx, r.db, scanInstructor,
		`SELECT `+personColumns+` FROM instructors ORDER BY last_name, first_name, id`)
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, i *model.Instructor) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO instructors (first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		i.FirstName, i.LastName, ts)
	if err != nil {
		return err
	}
	i.ID, i.CreatedAt, i.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies an instructor's name.
func (r *InstructorRepository) Update(ctx context.Context, i *model.Instructor) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE instructors SET first_name = $1, last_name = $2, updated_at = $3 WHERE id = $4`,
		i.FirstName, i.LastName, ts, i.ID); err != nil {
		return err
	}
	i.UpdatedAt = ts
	return nil
}

// Delete removes an instructor.
func (r *InstructorRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of instructors.
func (r *InstructorRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
