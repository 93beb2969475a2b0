package service

import (
	"context"
	"encoding/json"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/validator"
)

// entityAdmin adapts a typed service to registry.AdminStore. R is the
// request payload type the raw JSON is decoded and validated into.
type entityAdmin[T model.Record, R any] struct {
	crud   crud[T]
	create func(context.Context, R) (*T, error)
	update func(context.Context, int, R) (*T, error)
}

func adminFor[T model.Record, R any](c crud[T], create func(context.Context, R) (*T, error), update func(context.Context, int, R) (*T, error)) registry.AdminStore {
	return entityAdmin[T, R]{crud: c, create: create, update: update}
}

func (a entityAdmin[T, R]) Count(ctx context.Context) (int, error) {
	return a.crud.Count(ctx)
}

func (a entityAdmin[T, R]) List(ctx context.Context) ([]model.Record, error) {
	items, err := a.crud.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

func (a entityAdmin[T, R]) Get(ctx context.Context, id int) (model.Record, error) {
	rec, err := a.crud.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func (a entityAdmin[T, R]) Create(ctx context.Context, raw json.RawMessage) (model.Record, error) {
	var req R
	if err := validator.Decode(raw, &req); err != nil {
		return nil, err
	}
	rec, err := a.create(ctx, req)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func (a entityAdmin[T, R]) Update(ctx context.Context, id int, raw json.RawMessage) (model.Record, error) {
	var req R
	if err := validator.Decode(raw, &req); err != nil {
		return nil, err
	}
	rec, err := a.update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func (a entityAdmin[T, R]) Delete(ctx context.Context, id int) error {
	return a.crud.Delete(ctx, id)
}

var personFields = []registry.Field{
	{Name: "first_name", Label: "First name", Type: registry.FieldText, MaxLength: 45},
	{Name: "last_name", Label: "Last name", Type: registry.FieldText, MaxLength: 45},
}

// NewRegistry registers all eight entities. Period and Year are admin-only;
// the rest have public pages.
func NewRegistry(s *Services) (*registry.Registry, error) {
	return registry.New(
		registry.Entity{
			Kind:   model.KindPeriod,
			Title:  "Period",
			Plural: "Periods",
			Schema: registry.Schema{
				Fields: []registry.Field{
					{Name: "period_sequence", Label: "Sequence", Type: registry.FieldInt},
					{Name: "period_name", Label: "Name", Type: registry.FieldText, MaxLength: 45},
				},
				Ordering: []string{"period_sequence", "id"},
			},
			Admin: adminFor(s.Periods.crud, s.Periods.Create, s.Periods.Update),
		},
		registry.Entity{
			Kind:   model.KindYear,
			Title:  "Year",
			Plural: "Years",
			Schema: registry.Schema{
				Fields:   []registry.Field{{Name: "year", Label: "Year", Type: registry.FieldInt}},
				Ordering: []string{"year", "id"},
			},
			Admin: adminFor(s.Years.crud, s.Years.Create, s.Years.Update),
		},
		registry.Entity{
			Kind:    model.KindSemester,
			Title:   "Semester",
			Plural:  "Semesters",
			Exposed: true,
			Schema: registry.Schema{
				Fields: []registry.Field{
					{Name: "year_id", Label: "Year", Type: registry.FieldReference, Ref: model.KindYear},
					{Name: "period_id", Label: "Period", Type: registry.FieldReference, Ref: model.KindPeriod},
				},
				Unique:   [][]string{{"year_id", "period_id"}},
				Ordering: []string{"year.year", "period.period_sequence", "id"},
			},
			Admin: adminFor(s.Semesters.crud, s.Semesters.Create, s.Semesters.Update),
		},
		registry.Entity{
			Kind:    model.KindSection,
			Title:   "Section",
			Plural:  "Sections",
			Exposed: true,
			Schema: registry.Schema{
				Fields: []registry.Field{
					{Name: "section_name", Label: "Section name", Type: registry.FieldText, MaxLength: 10},
					{Name: "semester_id", Label: "Semester", Type: registry.FieldReference, Ref: model.KindSemester},
					{Name: "course_id", Label: "Course", Type: registry.FieldReference, Ref: model.KindCourse},
					{Name: "instructor_id", Label: "Instructor", Type: registry.FieldReference, Ref: model.KindInstructor},
				},
				Ordering: []string{"id"},
			},
			Admin: adminFor(s.Sections.crud, s.Sections.Create, s.Sections.Update),
		},
		registry.Entity{
			Kind:    model.KindCourse,
			Title:   "Course",
			Plural:  "Courses",
			Exposed: true,
			Schema: registry.Schema{
				Fields: []registry.Field{
					{Name: "course_number", Label: "Course number", Type: registry.FieldText, MaxLength: 20},
					{Name: "course_name", Label: "Course name", Type: registry.FieldText, MaxLength: 255},
				},
				Unique:   [][]string{{"course_number", "course_name"}},
				Ordering: []string{"course_number", "id"},
			},
			Admin: adminFor(s.Courses.crud, s.Courses.Create, s.Courses.Update),
		},
		registry.Entity{
			Kind:    model.KindInstructor,
			Title:   "Instructor",
			Plural:  "Instructors",
			Exposed: true,
			Schema: registry.Schema{
				Fields:   personFields,
				Unique:   [][]string{{"first_name", "last_name"}},
				Ordering: []string{"last_name", "first_name", "id"},
			},
			Admin: adminFor(s.Instructors.crud, s.Instructors.Create, s.Instructors.Update),
		},
		registry.Entity{
			Kind:    model.KindStudent,
			Title:   "Student",
			Plural:  "Students",
			Exposed: true,
			Schema: registry.Schema{
				Fields:   personFields,
				Unique:   [][]string{{"first_name", "last_name"}},
				Ordering: []string{"last_name", "first_name", "id"},
			},
			Admin: adminFor(s.Students.crud, s.Students.Create, s.Students.Update),
		},
		registry.Entity{
			Kind:    model.KindRegistration,
			Title:   "Registration",
			Plural:  "Registrations",
			Exposed: true,
			Schema: registry.Schema{
				Fields: []registry.Field{
					{Name: "student_id", Label: "Student", Type: registry.FieldReference, Ref: model.KindStudent},
					{Name: "section_id", Label: "Section", Type: registry.FieldReference, Ref: model.KindSection},
				},
				Ordering: []string{"id"},
			},
			Admin: adminFor(s.Registrations.crud, s.Registrations.Create, s.Registrations.Update),
		},
	)
}
