package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

// CourseService handles course reads and admin writes.
type CourseService struct {
	crud[model.Course]
	sections *repository.SectionRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo *repository.CourseRepository, sections *repository.SectionRepository, broker events.Broker, log zerolog.Logger) *CourseService {
	return &CourseService{
		crud:     newCrud[model.Course](repo, broker, log, "course_service"),
		sections: sections,
	}
}

// Detail returns a course with all of its sections.
func (s *CourseService) Detail(ctx context.Context, id int) (*model.CourseDetail, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sections, err := s.sections.ListByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.CourseDetail{Course: *course, Sections: sections}, nil
}

func (s *CourseService) Create(ctx context.Context, req model.CourseRequest) (*model.Course, error) {
	return s.create(ctx, &model.Course{Number: req.Number, Name: req.Name})
}

func (s *CourseService) Update(ctx context.Context, id int, req model.CourseRequest) (*model.Course, error) {
	return s.update(ctx, &model.Course{ID: id, Number: req.Number, Name: req.Name})
}
