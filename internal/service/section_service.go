package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// SectionService handles section reads and admin writes.
type SectionService struct {
	crud[model.Section]
	registrations *repository.RegistrationRepository
}

// NewSectionService creates a new SectionService.
func NewSectionService(repo *repository.SectionRepository, registrations *repository.RegistrationRepository, broker events.Broker, log zerolog.Logger) *SectionService {
	return &SectionService{
		crud:          newCrud[model.Section](repo, broker, log, "section_service"),
		registrations: registrations,
	}
}

// Detail returns a section with its registrations.
func (s *SectionService) Detail(ctx context.Context, id int) (*model.SectionDetail, error) {
	sec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrations.ListBySection(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.SectionDetail{Section: *sec, Registrations: regs}, nil
}

func (s *SectionService) Create(ctx context.Context, req model.SectionRequest) (*model.Section, error) {
	return s.create(ctx, &model.Section{
		Name:         req.Name,
		SemesterID:   req.SemesterID,
		CourseID:     req.CourseID,
		InstructorID: req.InstructorID,
	})
}

func (s *SectionService) Update(ctx context.Context, id int, req model.SectionRequest) (*model.Section, error) {
	return s.update(ctx, &model.Section{
		ID:           id,
		Name:         req.Name,
		SemesterID:   req.SemesterID,
		CourseID:     req.CourseID,
		InstructorID: req.InstructorID,
	})
}
