package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const courseColumns = `id, course_number, course_name, created_at, updated_at`

// CourseRepository handles course data access.
type CourseRepository struct {
	table
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{table{db: db, name: "courses"}}
}

func scanCourse(row scanner) (model.Course, error) {
	var c model.Course
	err := row.Scan(&c.ID, &c.Number, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c, err := scanCourse(r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &c, nil
}

// List returns all courses ordered by course number.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return queryAll(ctx, r.db, scanCourse,
		`SELECT `+courseColumns+` FROM courses ORDER BY course_number, id`)
}

// Create inserts a new course. A duplicate number and name pair returns ErrConstraintViolation.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO courses (course_number, course_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		c.Number, c.Name, ts)
	if err != nil {
		return err
	}
	c.ID, c.CreatedAt, c.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies a course's number and name.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE courses SET course_number = $1, course_name = $2, updated_at = $3 WHERE id = $4`,
		c.Number, c.Name, ts, c.ID); err != nil {
		return err
	}
	c.UpdatedAt = ts
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
