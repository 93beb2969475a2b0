package repository_test

import (
	"context"
	"testing"

	"github.com/ischool/courseinfo-backend/internal/database/dbtest"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repos struct {
	periods       *repository.PeriodRepository
	years         *repository.YearRepository
	semesters     *repository.SemesterRepository
	courses       *repository.CourseRepository
	instructors   *repository.InstructorRepository
	students      *repository.StudentRepository
	sections      *repository.SectionRepository
	registrations *repository.RegistrationRepository
	dashboard     *repository.DashboardRepository
}

func newRepos(t *testing.T) repos {
	db := dbtest.Open(t)
	return repos{
		periods:       repository.NewPeriodRepository(db.SQL),
		years:         repository.NewYearRepository(db.SQL),
		semesters:     repository.NewSemesterRepository(db.SQL),
		courses:       repository.NewCourseRepository(db.SQL),
		instructors:   repository.NewInstructorRepository(db.SQL),
		students:      repository.NewStudentRepository(db.SQL),
		sections:      repository.NewSectionRepository(db.SQL),
		registrations: repository.NewRegistrationRepository(db.SQL),
		dashboard:     repository.NewDashboardRepository(db.SQL),
	}
}

// fixture is one fully linked record of every kind.
type fixture struct {
	period       model.Period
	year         model.Year
	semester     model.Semester
	course       model.Course
	instructor   model.Instructor
	student      model.Student
	section      model.Section
	registration model.Registration
}

func seed(t *testing.T, r repos) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	f.period = model.Period{Sequence: 1, Name: "Winter"}
	require.NoError(t, r.periods.Create(ctx, &f.period))
	f.year = model.Year{Year: 2023}
	require.NoError(t, r.years.Create(ctx, &f.year))
	f.semester = model.Semester{YearID: f.year.ID, PeriodID: f.period.ID}
	require.NoError(t, r.semesters.Create(ctx, &f.semester))
	f.course = model.Course{Number: "IS507", Name: "Data Stat Info"}
	require.NoError(t, r.courses.Create(ctx, &f.course))
	f.instructor = model.Instructor{FirstName: "Kevin", LastName: "Trainor"}
	require.NoError(t, r.instructors.Create(ctx, &f.instructor))
	f.student = model.Student{FirstName: "Joy", LastName: "Sun"}
	require.NoError(t, r.students.Create(ctx, &f.student))
	f.section = model.Section{Name: "01", SemesterID: f.semester.ID, CourseID: f.course.ID, InstructorID: f.instructor.ID}
	require.NoError(t, r.sections.Create(ctx, &f.section))
	f.registration = model.Registration{StudentID: f.student.ID, SectionID: f.section.ID}
	require.NoError(t, r.registrations.Create(ctx, &f.registration))

	return f
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)

	assert.Positive(t, f.period.ID)
	assert.False(t, f.period.CreatedAt.IsZero())
	assert.Equal(t, f.period.CreatedAt, f.period.UpdatedAt)

	got, err := r.periods.GetByID(context.Background(), f.period.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter", got.Name)
	assert.Equal(t, 1, got.Sequence)
}

func TestGetByIDResolvesLabels(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	sem, err := r.semesters.GetByID(ctx, f.semester.ID)
	require.NoError(t, err)
	assert.Equal(t, "2023 - Winter", sem.String())
	assert.Equal(t, model.KindYear.DetailPath(f.year.ID), sem.Year.URL())

	sec, err := r.sections.GetByID(ctx, f.section.ID)
	require.NoError(t, err)
	assert.Equal(t, "IS507 - 01 (2023 - Winter)", sec.String())
	assert.Equal(t, "IS507 - Data Stat Info", sec.Course.Label)
	assert.Equal(t, "Trainor, Kevin", sec.Instructor.Label)
	assert.Equal(t, "2023 - Winter", sec.Semester.Label)

	reg, err := r.registrations.GetByID(ctx, f.registration.ID)
	require.NoError(t, err)
	assert.Equal(t, "IS507 - 01 (2023 - Winter) / Sun, Joy", reg.String())
}

func TestGetByIDNotFound(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.periods.GetByID(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.semesters.GetByID(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.sections.GetByID(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.registrations.GetByID(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListEmptyIsNotNil(t *testing.T) {
	r := newRepos(t)

	courses, err := r.courses.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestListSingleRecordFirst(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	instructors, err := r.instructors.List(ctx)
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, f.instructor.ID, instructors[0].ID)

	sections, err := r.sections.List(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "IS507 - 01 (2023 - Winter)", sections[0].String())
}

func TestDuplicateRejected(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	dupCourse := model.Course{Number: "IS507", Name: "Data Stat Info"}
	assert.ErrorIs(t, r.courses.Create(ctx, &dupCourse), repository.ErrConstraintViolation)
	n, err := r.courses.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dupStudent := model.Student{FirstName: "Joy", LastName: "Sun"}
	assert.ErrorIs(t, r.students.Create(ctx, &dupStudent), repository.ErrConstraintViolation)
	n, err = r.students.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dupInstructor := model.Instructor{FirstName: "Kevin", LastName: "Trainor"}
	assert.ErrorIs(t, r.instructors.Create(ctx, &dupInstructor), repository.ErrConstraintViolation)

	dupSemester := model.Semester{YearID: f.year.ID, PeriodID: f.period.ID}
	assert.ErrorIs(t, r.semesters.Create(ctx, &dupSemester), repository.ErrConstraintViolation)
	n, err = r.semesters.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSameNumberDifferentNameAllowed(t *testing.T) {
	r := newRepos(t)
	seed(t, r)

	other := model.Course{Number: "IS507", Name: "Data, Statistical Models and Information"}
	assert.NoError(t, r.courses.Create(context.Background(), &other))
}

func TestUpdateIntoDuplicateRejected(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	other := model.Student{FirstName: "Ann", LastName: "Lee"}
	require.NoError(t, r.students.Create(ctx, &other))

	other.FirstName, other.LastName = f.student.FirstName, f.student.LastName
	assert.ErrorIs(t, r.students.Update(ctx, &other), repository.ErrConstraintViolation)

	got, err := r.students.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lee, Ann", got.String())
}

func TestUpdate(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	f.course.Name = "Data, Statistical Models and Information"
	require.NoError(t, r.courses.Update(ctx, &f.course))

	sec, err := r.sections.GetByID(ctx, f.section.ID)
	require.NoError(t, err)
	assert.Equal(t, "IS507 - Data, Statistical Models and Information", sec.Course.Label)

	missing := model.Year{ID: 100000, Year: 1999}
	assert.ErrorIs(t, r.years.Update(ctx, &missing), repository.ErrNotFound)
}

func TestInvalidReference(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	sec := model.Section{Name: "02", SemesterID: 100000, CourseID: f.course.ID, InstructorID: f.instructor.ID}
	assert.ErrorIs(t, r.sections.Create(ctx, &sec), repository.ErrInvalidReference)

	f.registration.StudentID = 100000
	assert.ErrorIs(t, r.registrations.Update(ctx, &f.registration), repository.ErrInvalidReference)
}

func TestDeleteRestrictedWhileReferenced(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	assert.ErrorIs(t, r.students.Delete(ctx, f.student.ID), repository.ErrReferenced)
	assert.ErrorIs(t, r.sections.Delete(ctx, f.section.ID), repository.ErrReferenced)
	assert.ErrorIs(t, r.periods.Delete(ctx, f.period.ID), repository.ErrReferenced)

	require.NoError(t, r.registrations.Delete(ctx, f.registration.ID))
	require.NoError(t, r.students.Delete(ctx, f.student.ID))
	require.NoError(t, r.sections.Delete(ctx, f.section.ID))

	assert.ErrorIs(t, r.sections.Delete(ctx, f.section.ID), repository.ErrNotFound)
}

func TestSemesterOrdering(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	spring := model.Period{Sequence: 2, Name: "Spring"}
	winter := model.Period{Sequence: 1, Name: "Winter"}
	require.NoError(t, r.periods.Create(ctx, &spring))
	require.NoError(t, r.periods.Create(ctx, &winter))
	y23 := model.Year{Year: 2023}
	y22 := model.Year{Year: 2022}
	require.NoError(t, r.years.Create(ctx, &y23))
	require.NoError(t, r.years.Create(ctx, &y22))

	for _, s := range []model.Semester{
		{YearID: y23.ID, PeriodID: spring.ID},
		{YearID: y23.ID, PeriodID: winter.ID},
		{YearID: y22.ID, PeriodID: spring.ID},
	} {
		require.NoError(t, r.semesters.Create(ctx, &s))
	}

	list, err := r.semesters.List(ctx)
	require.NoError(t, err)
	labels := make([]string, len(list))
	for i, s := range list {
		labels[i] = s.String()
	}
	assert.Equal(t, []string{"2022 - Spring", "2023 - Winter", "2023 - Spring"}, labels)

	periods, err := r.periods.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Winter", periods[0].Name)
}

func TestPersonOrdering(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	for _, s := range []model.Student{
		{FirstName: "Zoe", LastName: "Adams"},
		{FirstName: "Joy", LastName: "Sun"},
		{FirstName: "Amy", LastName: "Adams"},
	} {
		require.NoError(t, r.students.Create(ctx, &s))
	}

	list, err := r.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adams, Amy", list[0].String())
	assert.Equal(t, "Adams, Zoe", list[1].String())
	assert.Equal(t, "Sun, Joy", list[2].String())
}

func TestRelationFinders(t *testing.T) {
	r := newRepos(t)
	f := seed(t, r)
	ctx := context.Background()

	bySemester, err := r.sections.ListBySemester(ctx, f.semester.ID)
	require.NoError(t, err)
	assert.Len(t, bySemester, 1)

	byCourse, err := r.sections.ListByCourse(ctx, f.course.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)

	byInstructor, err := r.sections.ListByInstructor(ctx, 100000)
	require.NoError(t, err)
	assert.Empty(t, byInstructor)

	byStudent, err := r.registrations.ListByStudent(ctx, f.student.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, f.section.ID, byStudent[0].Section.ID)

	bySection, err := r.registrations.ListBySection(ctx, f.section.ID)
	require.NoError(t, err)
	assert.Len(t, bySection, 1)
}

func TestDashboardCounts(t *testing.T) {
	r := newRepos(t)
	seed(t, r)
	ctx := context.Background()

	counts, err := r.dashboard.GetSummaryCounts(ctx)
	require.NoError(t, err)
	for _, k := range model.AllKinds {
		assert.Equal(t, 1, counts[k], string(k))
	}

	recent, err := r.dashboard.RecentRegistrations(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
