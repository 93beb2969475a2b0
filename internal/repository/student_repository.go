package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	table
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{table{db: db, name: "students"}}
}

func scanStudent(row scanner) (model.Student, error) {
	var s model.Student
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s, err := scanStudent(r.db.QueryRowContext(ctx,
		`SELECT `+personColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &s, nil
}

// List returns all students ordered by last then first name.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	return queryAll(ctx, r.db, scanStudent,
		`SELECT `+personColumns+` FROM students ORDER BY last_name, first_name, id`)
}

// Create inserts a new student. A duplicate name pair returns ErrConstraintViolation.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO students (first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		s.FirstName, s.LastName, ts)
	if err != nil {
		return err
	}
	s.ID, s.CreatedAt, s.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies a student's name.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE students SET first_name = $1, last_name = $2, updated_at = $3 WHERE id = $4`,
		s.FirstName, s.LastName, ts, s.ID); err != nil {
		return err
	}
	s.UpdatedAt = ts
	return nil
}

// Delete removes a student. Students with registrations cannot be deleted.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
