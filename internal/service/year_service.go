package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/rs/zerolog"
)

type YearService struct {
	crud[model.Year]
}

func NewYearService(repo *repository.YearRepository, broker events.Broker, log zerolog.Logger) *YearService {
	return &YearService{newCrud[model.Year](repo, broker, log, "year_service")}
}

func (s *YearService) Create(ctx context.Context, req model.YearRequest) (*model.Year, error) {
	year, err := requiredInt("year", req.Year)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &model.Year{Year: year})
}

func (s *YearService) Update(ctx context.Context, id int, req model.YearRequest) (*model.Year, error) {
	year, err := requiredInt("year", req.Year)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, &model.Year{ID: id, Year: year})
}
