package repository

import (
	"context"
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/model"
)

const registrationSelect = `
	SELECT r.id, r.student_id, r.section_id, r.created_at, r.updated_at,
	       st.first_name, st.last_name,
	       sec.section_name, y.year, p.period_name, c.course_number
	FROM registrations r
	JOIN students st ON st.id = r.student_id
	JOIN sections sec ON sec.id = r.section_id
	JOIN semesters sem ON sem.id = sec.semester_id
	JOIN years y ON y.id = sem.year_id
	JOIN periods p ON p.id = sem.period_id
	JOIN courses c ON c.id = sec.course_id`

// RegistrationRepository handles registration data access.
type RegistrationRepository struct {
	table
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{table{db: db, name: "registrations"}}
}

func scanRegistration(row scanner) (model.Registration, error) {
	var (
		reg                   model.Registration
		first, last           string
		sectionName           string
		year                  int
		periodName, courseNum string
	)
	err := row.Scan(&reg.ID, &reg.StudentID, &reg.SectionID, &reg.CreatedAt, &reg.UpdatedAt,
		&first, &last, &sectionName, &year, &periodName, &courseNum)
	if err != nil {
		return reg, err
	}
	semester := model.SemesterLabel(model.YearLabel(year), model.PeriodLabel(periodName))
	reg.Student = model.Ref{Kind: model.KindStudent, ID: reg.StudentID, Label: model.PersonLabel(first, last)}
	reg.Section = model.Ref{Kind: model.KindSection, ID: reg.SectionID, Label: model.SectionLabel(courseNum, sectionName, semester)}
	return reg, nil
}

// GetByID retrieves a registration with its student and section resolved.
func (r *RegistrationRepository) GetByID(ctx context.Context, id int) (*model.Registration, error) {
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, registrationSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, readErr(err)
	}
	return &reg, nil
}

// List returns all registrations in id order.
func (r *RegistrationRepository) List(ctx context.Context) ([]model.Registration, error) {
	return queryAll(ctx, r.db, scanRegistration, registrationSelect+` ORDER BY r.id`)
}

// ListByStudent returns a student's registrations.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Registration, error) {
	return queryAll(ctx, r.db, scanRegistration, registrationSelect+` WHERE r.student_id = $1 ORDER BY r.id`, studentID)
}

// ListBySection returns the registrations for a section.
func (r *RegistrationRepository) ListBySection(ctx context.Context, sectionID int) ([]model.Registration, error) {
	return queryAll(ctx, r.db, scanRegistration, registrationSelect+` WHERE r.section_id = $1 ORDER BY r.id`, sectionID)
}

// Create inserts a new registration.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	ts := now()
	id, err := r.insert(ctx,
		`INSERT INTO registrations (student_id, section_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $3) RETURNING id`,
		reg.StudentID, reg.SectionID, ts)
	if err != nil {
		return err
	}
	reg.ID, reg.CreatedAt, reg.UpdatedAt = id, ts, ts
	return nil
}

// Update moves a registration to a different student or section.
func (r *RegistrationRepository) Update(ctx context.Context, reg *model.Registration) error {
	ts := now()
	if err := r.update(ctx,
		`UPDATE registrations SET student_id = $1, section_id = $2, updated_at = $3 WHERE id = $4`,
		reg.StudentID, reg.SectionID, ts, reg.ID); err != nil {
		return err
	}
	reg.UpdatedAt = ts
	return nil
}

// Delete removes a registration.
func (r *RegistrationRepository) Delete(ctx context.Context, id int) error {
	return r.delete(ctx, id)
}

// Count returns the number of registrations.
func (r *RegistrationRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}
