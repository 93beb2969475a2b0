package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ischool/courseinfo-backend/internal/database/dbtest"
	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/ischool/courseinfo-backend/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T) (*service.Services, *events.LocalBroker) {
	t.Helper()
	validator.Setup()
	db := dbtest.Open(t)
	broker := events.NewLocalBroker()
	t.Cleanup(func() { broker.Close() })
	return service.NewServices(db.SQL, broker, zerolog.Nop()), broker
}

func next(t *testing.T, ch <-chan events.Change) events.Change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no change published")
		return events.Change{}
	}
}

// seedSection creates the records one section needs and returns it.
func seedSection(t *testing.T, s *service.Services) *model.Section {
	t.Helper()
	ctx := context.Background()

	seq, yr := 1, 2022
	period, err := s.Periods.Create(ctx, model.PeriodRequest{Sequence: &seq, Name: "Winter"})
	require.NoError(t, err)
	year, err := s.Years.Create(ctx, model.YearRequest{Year: &yr})
	require.NoError(t, err)
	sem, err := s.Semesters.Create(ctx, model.SemesterRequest{YearID: year.ID, PeriodID: period.ID})
	require.NoError(t, err)
	course, err := s.Courses.Create(ctx, model.CourseRequest{Number: "IS515", Name: "Applied Machine Learning"})
	require.NoError(t, err)
	inst, err := s.Instructors.Create(ctx, model.PersonRequest{FirstName: "Kevin", LastName: "Trainor"})
	require.NoError(t, err)
	sec, err := s.Sections.Create(ctx, model.SectionRequest{
		Name: "01", SemesterID: sem.ID, CourseID: course.ID, InstructorID: inst.ID,
	})
	require.NoError(t, err)
	return sec
}

func TestCreateReturnsResolvedRecordAndPublishes(t *testing.T) {
	s, broker := setup(t)
	changes, cancel := broker.Subscribe(context.Background())
	defer cancel()

	sec := seedSection(t, s)
	assert.Equal(t, "IS515 - 01 (2022 - Winter)", sec.String())

	var last events.Change
	for i := 0; i < 6; i++ {
		last = next(t, changes)
	}
	assert.Equal(t, model.KindSection, last.Entity)
	assert.Equal(t, events.ActionCreated, last.Action)
	assert.Equal(t, sec.ID, last.ID)
	assert.Equal(t, "IS515 - 01 (2022 - Winter)", last.Label)
}

func TestFailedWriteDoesNotPublish(t *testing.T) {
	s, broker := setup(t)
	ctx := context.Background()

	_, err := s.Courses.Create(ctx, model.CourseRequest{Number: "IS507", Name: "Data Stat Info"})
	require.NoError(t, err)

	changes, cancel := broker.Subscribe(ctx)
	defer cancel()

	_, err = s.Courses.Create(ctx, model.CourseRequest{Number: "IS507", Name: "Data Stat Info"})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
	assert.Empty(t, changes)
}

func TestDeletePublishesLabel(t *testing.T) {
	s, broker := setup(t)
	ctx := context.Background()

	student, err := s.Students.Create(ctx, model.PersonRequest{FirstName: "Qiaoyue", LastName: "Sun"})
	require.NoError(t, err)

	changes, cancel := broker.Subscribe(ctx)
	defer cancel()

	require.NoError(t, s.Students.Delete(ctx, student.ID))
	c := next(t, changes)
	assert.Equal(t, events.ActionDeleted, c.Action)
	assert.Equal(t, "Sun, Qiaoyue", c.Label)

	assert.ErrorIs(t, s.Students.Delete(ctx, student.ID), repository.ErrNotFound)
}

func TestUpdateMissingRecord(t *testing.T) {
	s, _ := setup(t)

	_, err := s.Courses.Update(context.Background(), 100000, model.CourseRequest{Number: "X", Name: "Y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDetails(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()
	sec := seedSection(t, s)

	student, err := s.Students.Create(ctx, model.PersonRequest{FirstName: "Joy", LastName: "Sun"})
	require.NoError(t, err)
	_, err = s.Registrations.Create(ctx, model.RegistrationRequest{StudentID: student.ID, SectionID: sec.ID})
	require.NoError(t, err)

	semDetail, err := s.Semesters.Detail(ctx, sec.SemesterID)
	require.NoError(t, err)
	assert.Len(t, semDetail.Sections, 1)

	courseDetail, err := s.Courses.Detail(ctx, sec.CourseID)
	require.NoError(t, err)
	assert.Len(t, courseDetail.Sections, 1)

	instDetail, err := s.Instructors.Detail(ctx, sec.InstructorID)
	require.NoError(t, err)
	assert.Len(t, instDetail.Sections, 1)

	studentDetail, err := s.Students.Detail(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, studentDetail.Registrations, 1)
	assert.Equal(t, "IS515 - 01 (2022 - Winter) / Sun, Joy", studentDetail.Registrations[0].String())

	secDetail, err := s.Sections.Detail(ctx, sec.ID)
	require.NoError(t, err)
	assert.Len(t, secDetail.Registrations, 1)

	_, err = s.Sections.Detail(ctx, 100000)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegistry(t *testing.T) {
	s, _ := setup(t)

	reg, err := service.NewRegistry(s)
	require.NoError(t, err)

	assert.Len(t, reg.All(), len(model.AllKinds))
	for i, e := range reg.All() {
		assert.Equal(t, model.AllKinds[i], e.Kind)
	}

	var exposed []model.Kind
	for _, e := range reg.Exposed() {
		exposed = append(exposed, e.Kind)
	}
	assert.ElementsMatch(t, []model.Kind{
		model.KindSemester, model.KindSection, model.KindCourse,
		model.KindInstructor, model.KindStudent, model.KindRegistration,
	}, exposed)
}

func TestPresentZeroIntegersAreAccepted(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()

	zero := 0
	p, err := s.Periods.Create(ctx, model.PeriodRequest{Sequence: &zero, Name: "Intersession"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Sequence)

	_, err = s.Periods.Create(ctx, model.PeriodRequest{Name: "Intersession"})
	var fields validator.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "period_sequence")

	_, err = s.Years.Update(ctx, 100000, model.YearRequest{})
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "year")
}

func TestAdminStoreRoundTrip(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()
	reg, err := service.NewRegistry(s)
	require.NoError(t, err)

	courses, ok := reg.Lookup(model.KindCourse)
	require.True(t, ok)

	rec, err := courses.Admin.Create(ctx, json.RawMessage(`{"course_number":"IS507","course_name":"Data Stat Info"}`))
	require.NoError(t, err)
	assert.Equal(t, "IS507 - Data Stat Info", rec.String())
	assert.Equal(t, model.KindCourse.DetailPath(rec.PK()), rec.AbsoluteURL())

	_, err = courses.Admin.Create(ctx, json.RawMessage(`{"course_number":"IS507","course_name":"Data Stat Info"}`))
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	_, err = courses.Admin.Create(ctx, json.RawMessage(`{"course_number":"IS507"}`))
	var fields validator.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "course_name")

	updated, err := courses.Admin.Update(ctx, rec.PK(), json.RawMessage(`{"course_number":"IS507","course_name":"Data, Statistical Models"}`))
	require.NoError(t, err)
	assert.Equal(t, "IS507 - Data, Statistical Models", updated.String())

	n, err := courses.Admin.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := courses.Admin.Get(ctx, rec.PK())
	require.NoError(t, err)
	assert.Equal(t, updated.String(), got.String())

	require.NoError(t, courses.Admin.Delete(ctx, rec.PK()))
	list, err := courses.Admin.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAdminStoreInvalidReference(t *testing.T) {
	s, _ := setup(t)
	reg, err := service.NewRegistry(s)
	require.NoError(t, err)

	sections, _ := reg.Lookup(model.KindSection)
	_, err = sections.Admin.Create(context.Background(),
		json.RawMessage(`{"section_name":"01","semester_id":5,"course_id":6,"instructor_id":7}`))
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestExport(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()
	seedSection(t, s)
	_, err := s.Instructors.Create(ctx, model.PersonRequest{FirstName: "Ann", LastName: "Adams"})
	require.NoError(t, err)

	reg, err := service.NewRegistry(s)
	require.NoError(t, err)
	instructors, _ := reg.Lookup(model.KindInstructor)

	buf, filename, err := s.Export.Export(ctx, instructors)
	require.NoError(t, err)
	assert.Equal(t, "instructors.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Instructors")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "first_name", "last_name", "label"}, rows[0])
	assert.Equal(t, "Adams, Ann", rows[1][3])
	assert.Equal(t, "Trainor, Kevin", rows[2][3])
}

func TestDashboardSummary(t *testing.T) {
	s, _ := setup(t)
	seedSection(t, s)

	reg, err := service.NewRegistry(s)
	require.NoError(t, err)

	data, err := s.Dashboard.Summary(context.Background(), reg)
	require.NoError(t, err)
	require.Len(t, data.Entities, len(model.AllKinds))

	counts := map[model.Kind]int{}
	for _, e := range data.Entities {
		counts[e.Kind] = e.Count
		assert.Equal(t, "/admin"+e.Kind.Path(), e.URL)
	}
	assert.Equal(t, 1, counts[model.KindSection])
	assert.Equal(t, 0, counts[model.KindStudent])
	assert.Empty(t, data.RecentRegistrations)
}

func TestSeed(t *testing.T) {
	s, _ := setup(t)
	ctx := context.Background()

	res, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res[model.KindPeriod])
	assert.Equal(t, 4, res[model.KindSemester])
	assert.Equal(t, 12, res[model.KindSection])
	assert.Equal(t, 8, res[model.KindRegistration])

	n, err := s.Sections.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = s.Seed(ctx)
	assert.ErrorIs(t, err, service.ErrAlreadySeeded)
}
