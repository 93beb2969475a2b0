package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// InstructorService handles instructor reads and admin writes.
type InstructorService struct {
	crud[model.Instructor]
	sections *repository.SectionRepository
}

// NewInstructorService creates a new InstructorService.
func NewInstructorService(repo *repository.InstructorRepository, sections *repository.SectionRepository, broker events.Broker, log zerolog.Logger) *InstructorService {
	return &InstructorService{
		crud:     newCrud[model.Instructor](repo, broker, log, "instructor_service"),
		sections: sections,
	}
}

// Detail returns an instructor with the sections they teach.
func (s *InstructorService) Detail(ctx context.Context, id int) (*model.InstructorDetail, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sections, err := s.sections.ListByInstructor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.InstructorDetail{Instructor: *inst, Sections: sections}, nil
}

func (s *InstructorService) Create(ctx context.Context, req model.PersonRequest) (*model.Instructor, error) {
	return s.create(ctx, &model.Instructor{FirstName: req.FirstName, LastName: req.LastName})
}

func (s *InstructorService) Update(ctx context.Context, id int, req model.PersonRequest) (*model.Instructor, error) {
	return s.update(ctx, &model.Instructor{ID: id, FirstName: req.FirstName, LastName: req.LastName})
}
