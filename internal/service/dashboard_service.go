package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/repository"
)

// EntitySummary is one row of the admin index.
type EntitySummary struct {
	Kind   model.Kind `json:"entity"`
	Title  string     `json:"title"`
	Plural string     `json:"plural"`
	Count  int        `json:"count"`
	URL    string     `json:"url"`
}

// DashboardData consolidates everything the admin index shows.
type DashboardData struct {
	Entities            []EntitySummary      `json:"entities"`
	RecentRegistrations []model.Registration `json:"recent_registrations"`
}

// DashboardService handles admin index business logic.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summary returns record counts for every registered entity, in
// registration order, plus the newest registrations.
func (s *DashboardService) Summary(ctx context.Context, reg *registry.Registry) (*DashboardData, error) {
	counts, err := s.repo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentRegistrations(ctx, 5)
	if err != nil {
		return nil, err
	}

	entities := reg.All()
	out := make([]EntitySummary, len(entities))
	for i, e := range entities {
		out[i] = EntitySummary{
			Kind:   e.Kind,
			Title:  e.Title,
			Plural: e.Plural,
			Count:  counts[e.Kind],
			URL:    "/admin" + e.Kind.Path(),
		}
	}

	return &DashboardData{Entities: out, RecentRegistrations: recent}, nil
}
