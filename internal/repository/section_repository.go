package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// sectionJoins resolves everything a section label and its links need.
const sectionJoins = `
	FROM sections sec
	JOIN semesters sem ON sem.id = sec.semester_id
	JOIN years y ON y.id = sem.year_id
	JOIN periods p ON p.id = sem.period_id
	JOIN courses c ON c.id = sec.course_id
	JOIN instructors i ON i.id = sec.instructor_id`

const sectionSelect = `
	SELECT sec.id, sec.section_name, sec.semester_id, sec.course_id, sec.instructor_id,
	       sec.created_at, sec.updated_at,
	       y.year, p.period_name, c.course_number, c.course_name, i.first_name, i.last_name` + sectionJoins

// SectionRepository handles section data access.
type SectionRepository struct {
	table
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(db *sql.DB) *SectionRepository {
	return &SectionRepository{table{db: db, name: "sections"}}
}

func scanSection(row scanner) (model.Section, error) {
	var (
		s                   model.Section
		year                int
		periodName          string
		courseName          string
		instFirst, instLast string
	)
	err := row.Scan(&s.ID, &s.Name, &s.SemesterID, &s.CourseID, &s.InstructorID,
		&s.CreatedAt, &s.UpdatedAt,
		&year, &periodName, &s.CourseNumber, &courseName, &instFirst, &instLast)
	if err != nil {
		return s, err
	}
	s.Semester = model.Ref{
		Kind:  model.KindSemester,
		ID:    s.SemesterID,
		Label: model.SemesterLabel(model.YearLabel(year), model.PeriodLabel(periodName)),
	}
	s.Course = model.Ref{Kind: model.KindCourse, ID: s.CourseID, Label: model.CourseLabel(s.CourseNumber, courseName)}
	s.Instructor = model.Ref{Kind: model.KindInstructor, ID: s.InstructorID, Label: model.PersonLabel(instFirst, instLast)}
	return s, nil
}

// GetByID retrieves a section with its semester, course and instructor resolved.
func (r *SectionRepository) GetByID(ctx context.Context, id int) (*model.Section, error) {
	s, err := scanSection(r.db.QueryRowContext(ctx, sectionSelect+` WHERE sec.id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &s, nil
}

// List returns all sections in id order.
func (r *SectionRepository) List(ctx context.Context) ([]model.Section, error) {
	return queryAll(ctx, r.db, scanSection, sectionSelect+` ORDER BY sec.id`)
}

// ListBySemester returns the sections offered in a semester.
func (r *SectionRepository) ListBySemester(ctx context.Context, semesterID int) ([]model.Section, error) {
	return queryAll(ctx, r.db, scanSection, sectionSelect+` WHERE sec.semester_id = $1 ORDER BY sec.id`, semesterID)
}

// ListByCourse returns the sections of a course.
func (r *SectionRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Section, error) {
	return queryAll(ctx, r.db, scanSection, sectionSelect+` WHERE sec.course_id = $1 ORDER BY sec.id`, courseID)
}

// ListByInstructor returns the sections an instructor teaches.
func (r *SectionRepository) ListByInstructor(ctx context.Context, instructorID int) ([]model.Section, error) {
	return queryAll(ctx, r.db, scanSection, sectionSelect+` WHERE sec.instructor_id = $1 ORDER BY sec.id`, instructorID)
}

// Create inserts a new section. Missing semester, course or instructor ids return ErrInvalidReference.
func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO sections (section_name, semester_id, course_id, instructor_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`,
		s.Name, s.SemesterID, s.CourseID, s.InstructorID, ts)
	if err != nil {
		return err
	}
	s.ID, s.CreatedAt, s.UpdatedAt = id, ts, ts
	return nil
}

// Update modifies a section.
func (r *SectionRepository) Update(ctx context.Context, s *model.Section) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE sections SET section_name = $1, semester_id = $2, course_id = $3, instructor_id = $4, updated_at = $5
		 WHERE id = $6`,
		s.Name, s.SemesterID, s.CourseID, s.InstructorID, ts, s.ID); err != nil {
		return err
	}
	s.UpdatedAt = ts
	return nil
}

// Delete removes a section.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of sections.
func (r *SectionRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
