package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/service"
)

// detailFunc loads a record together with its reverse relations.
type detailFunc func(ctx context.Context, id int) (model.Record, error)

func detail[T model.Record](load func(context.Context, int) (*T, error)) detailFunc {
	return func(ctx context.Context, id int) (model.Record, error) {
		v, err := load(ctx, id)
		if err != nil {
			return nil, err
		}
		return *v, nil
	}
}

// detailReaders returns the detail loader for every publicly exposed kind.
func detailReaders(s *service.Services) map[model.Kind]detailFunc {
	return map[model.Kind]detailFunc{
		model.KindSemester:     detail(s.Semesters.Detail),
		model.KindSection:      detail(s.Sections.Detail),
		model.KindCourse:       detail(s.Courses.Detail),
		model.KindInstructor:   detail(s.Instructors.Detail),
		model.KindStudent:      detail(s.Students.Detail),
		model.KindRegistration: detail(s.Registrations.GetByID),
	}
}

// present renders a record as its JSON fields plus its label and detail URL.
func present(rec model.Record) (gin.H, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := gin.H{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out["label"] = rec.String()
	out["url"] = rec.AbsoluteURL()
	return out, nil
}

func presentAll(recs []model.Record) ([]gin.H, error) {
	out := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		item, err := present(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
