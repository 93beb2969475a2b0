package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

type PeriodService struct {
	crud[model.Period]
}

func NewPeriodService(repo *repository.PeriodRepository, broker events.Broker, log zerolog.Logger) *PeriodService {
	return &PeriodService{newCrud[model.Period](repo, broker, log, "period_service")}
}

func (s *PeriodService) Create(ctx context.Context, req model.PeriodRequest) (*model.Period, error) {
	seq, err := requiredInt("period_sequence", req.Sequence)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &model.Period{Sequence: seq, Name: req.Name})
}

func (s *PeriodService) Update(ctx context.Context, id int, req model.PeriodRequest) (*model.Period, error) {
	seq, err := requiredInt("period_sequence", req.Sequence)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, &model.Period{ID: id, Sequence: seq, Name: req.Name})
}
