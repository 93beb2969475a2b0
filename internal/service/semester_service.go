package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// SemesterService handles semester reads and admin writes.
type SemesterService struct {
	crud[model.Semester]
	sections *repository.SectionRepository
}

// NewSemesterService creates a new SemesterService.
func NewSemesterService(repo *repository.SemesterRepository, sections *repository.SectionRepository, broker events.Broker, log zerolog.Logger) *SemesterService {
	return &SemesterService{
		crud:     newCrud[model.Semester](repo, broker, log, "semester_service"),
		sections: sections,
	}
}

// Detail returns a semester with the sections offered in it.
func (s *SemesterService) Detail(ctx context.Context, id int) (*model.SemesterDetail, error) {
	sem, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sections, err := s.sections.ListBySemester(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.SemesterDetail{Semester: *sem, Sections: sections}, nil
}

func (s *SemesterService) Create(ctx context.Context, req model.SemesterRequest) (*model.Semester, error) {
	return s.create(ctx, &model.Semester{YearID: req.YearID, PeriodID: req.PeriodID})
}

func (s *SemesterService) Update(ctx context.Context, id int, req model.SemesterRequest) (*model.Semester, error) {
	return s.update(ctx, &model.Semester{ID: id, YearID: req.YearID, PeriodID: req.PeriodID})
}
