package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

type RegistrationService struct {
	crud[model.Registration]
}

func NewRegistrationService(repo *repository.RegistrationRepository, broker events.Broker, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{newCrud[model.Registration](repo, broker, log, "registration_service")}
}

func (s *RegistrationService) Create(ctx context.Context, req model.RegistrationRequest) (*model.Registration, error) {
	return s.create(ctx, &model.Registration{StudentID: req.StudentID, SectionID: req.SectionID})
}

func (s *RegistrationService) Update(ctx context.Context, id int, req model.RegistrationRequest) (*model.Registration, error) {
	return s.update(ctx, &model.Registration{ID: id, StudentID: req.StudentID, SectionID: req.SectionID})
}
