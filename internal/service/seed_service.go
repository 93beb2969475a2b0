package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// ErrAlreadySeeded is returned when the database already holds periods.
var ErrAlreadySeeded = errors.New("database already contains data")

// SeedResult counts the records Seed created.
type SeedResult map[model.Kind]int

// Seed fills an empty database with a small demo catalog: two years of
// semesters, a few courses, instructors and students, one section per
// course and semester, and a handful of registrations.
// Writes go through the services, so subscribers see every record arrive.
func (s *Services) Seed(ctx context.Context) (SeedResult, error) {
	n, err := s.Periods.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAlreadySeeded
	}

	res := SeedResult{}
	count := func(k model.Kind) { res[k]++ }

	var periods []*model.Period
	for i, name := range []string{"Spring", "Summer", "Fall"} {
		p, err := s.Periods.Create(ctx, model.PeriodRequest{Sequence: intPtr(i + 1), Name: name})
		if err != nil {
			return res, fmt.Errorf("seed period %s: %w", name, err)
		}
		periods = append(periods, p)
		count(model.KindPeriod)
	}

	var semesters []*model.Semester
	for _, yr := range []int{2024, 2025} {
		y, err := s.Years.Create(ctx, model.YearRequest{Year: intPtr(yr)})
		if err != nil {
			return res, fmt.Errorf("seed year %d: %w", yr, err)
		}
		count(model.KindYear)
		for _, p := range []*model.Period{periods[0], periods[2]} {
			sem, err := s.Semesters.Create(ctx, model.SemesterRequest{YearID: y.ID, PeriodID: p.ID})
			if err != nil {
				return res, fmt.Errorf("seed semester: %w", err)
			}
			semesters = append(semesters, sem)
			count(model.KindSemester)
		}
	}

	var courses []*model.Course
	for _, c := range []model.CourseRequest{
		{Number: "IS417", Name: "Data Visualization"},
		{Number: "IS490", Name: "Database Design"},
		{Number: "IS507", Name: "Data, Statistical Models and Information"},
	} {
		co, err := s.Courses.Create(ctx, c)
		if err != nil {
			return res, fmt.Errorf("seed course %s: %w", c.Number, err)
		}
		courses = append(courses, co)
		count(model.KindCourse)
	}

	var instructors []*model.Instructor
	for _, p := range []model.PersonRequest{
		{FirstName: "Kevin", LastName: "Trainor"},
		{FirstName: "Anita", LastName: "Borg"},
	} {
		in, err := s.Instructors.Create(ctx, p)
		if err != nil {
			return res, fmt.Errorf("seed instructor %s: %w", p.LastName, err)
		}
		instructors = append(instructors, in)
		count(model.KindInstructor)
	}

	var students []*model.Student
	for _, p := range []model.PersonRequest{
		{FirstName: "Joy", LastName: "Sun"},
		{FirstName: "Ravi", LastName: "Patel"},
		{FirstName: "Maria", LastName: "Lopez"},
		{FirstName: "Ken", LastName: "Adams"},
	} {
		st, err := s.Students.Create(ctx, p)
		if err != nil {
			return res, fmt.Errorf("seed student %s: %w", p.LastName, err)
		}
		students = append(students, st)
		count(model.KindStudent)
	}

	var sections []*model.Section
	for i, sem := range semesters {
		for j, co := range courses {
			sec, err := s.Sections.Create(ctx, model.SectionRequest{
				Name:         fmt.Sprintf("%02d", i+1),
				SemesterID:   sem.ID,
				CourseID:     co.ID,
				InstructorID: instructors[j%len(instructors)].ID,
			})
			if err != nil {
				return res, fmt.Errorf("seed section: %w", err)
			}
			sections = append(sections, sec)
			count(model.KindSection)
		}
	}

	for i, st := range students {
		for _, sec := range []*model.Section{sections[i%len(sections)], sections[(i+len(courses))%len(sections)]} {
			if _, err := s.Registrations.Create(ctx, model.RegistrationRequest{StudentID: st.ID, SectionID: sec.ID}); err != nil {
				return res, fmt.Errorf("seed registration: %w", err)
			}
			count(model.KindRegistration)
		}
	}

	return res, nil
}
