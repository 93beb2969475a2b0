package service

import (
	"database/sql"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Services bundles every service the HTTP layer and the CLI use.
type Services struct {
	Periods       *PeriodService
	Years         *YearService
	Semesters     *SemesterService
	Courses       *CourseService
	Instructors   *InstructorService
	Students      *StudentService
	Sections      *SectionService
	Registrations *RegistrationService
	Dashboard     *DashboardService
	Export        *ExportService
}

// NewServices wires repositories over db and the services on top of them.
// broker may be nil, in which case writes are not announced.
func NewServices(db *sql.DB, broker events.Broker, log zerolog.Logger) *Services {
	periodRepo := repository.NewPeriodRepository(db)
	yearRepo := repository.NewYearRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	return &Services{
		Periods:       NewPeriodService(periodRepo, broker, log),
		Years:         NewYearService(yearRepo, broker, log),
		Semesters:     NewSemesterService(semesterRepo, sectionRepo, broker, log),
		Courses:       NewCourseService(courseRepo, sectionRepo, broker, log),
		Instructors:   NewInstructorService(instructorRepo, sectionRepo, broker, log),
		Students:      NewStudentService(studentRepo, registrationRepo, broker, log),
		Sections:      NewSectionService(sectionRepo, registrationRepo, broker, log),
		Registrations: NewRegistrationService(registrationRepo, broker, log),
		Dashboard:     NewDashboardService(dashboardRepo),
		Export:        NewExportService(log),
	}
}
