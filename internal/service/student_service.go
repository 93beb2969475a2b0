package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// StudentService handles student reads and admin writes.
type StudentService struct {
	crud[model.Student]
	registrations *repository.RegistrationRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo *repository.StudentRepository, registrations *repository.RegistrationRepository, broker events.Broker, log zerolog.Logger) *StudentService {
	return &StudentService{
		crud:          newCrud[model.Student](repo, broker, log, "student_service"),
		registrations: registrations,
	}
}

// Detail returns a student with their registrations.
func (s *StudentService) Detail(ctx context.Context, id int) (*model.StudentDetail, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrations.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.StudentDetail{Student: *student, Registrations: regs}, nil
}

func (s *StudentService) Create(ctx context.Context, req model.PersonRequest) (*model.Student, error) {
	return s.create(ctx, &model.Student{FirstName: req.FirstName, LastName: req.LastName})
}

func (s *StudentService) Update(ctx context.Context, id int, req model.PersonRequest) (*model.Student, error) {
	return s.update(ctx, &model.Student{ID: id, FirstName: req.FirstName, LastName: req.LastName})
}
