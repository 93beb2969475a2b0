package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct{}

func (stubStore) Count(context.Context) (int, error)             { return 0, nil }
func (stubStore) List(context.Context) ([]model.Record, error)   { return nil, nil }
func (stubStore) Get(context.Context, int) (model.Record, error) { return nil, nil }
func (stubStore) Delete(context.Context, int) error              { return nil }
func (stubStore) Create(context.Context, json.RawMessage) (model.Record, error) {
	return nil, nil
}
func (stubStore) Update(context.Context, int, json.RawMessage) (model.Record, error) {
	return nil, nil
}

func TestNewKeepsRegistrationOrder(t *testing.T) {
	r, err := New(
		Entity{Kind: model.KindPeriod, Admin: stubStore{}},
		Entity{Kind: model.KindCourse, Exposed: true, Admin: stubStore{}},
		Entity{Kind: model.KindYear, Admin: stubStore{}},
	)
	require.NoError(t, err)

	var kinds []model.Kind
	for _, e := range r.All() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []model.Kind{model.KindPeriod, model.KindCourse, model.KindYear}, kinds)

	exposed := r.Exposed()
	require.Len(t, exposed, 1)
	assert.Equal(t, model.KindCourse, exposed[0].Kind)

	e, ok := r.Lookup(model.KindYear)
	assert.True(t, ok)
	assert.Equal(t, model.KindYear, e.Kind)

	_, ok = r.Lookup(model.KindStudent)
	assert.False(t, ok)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		Entity{Kind: model.KindCourse, Admin: stubStore{}},
		Entity{Kind: model.KindCourse, Admin: stubStore{}},
	)
	assert.ErrorContains(t, err, "registered twice")
}

func TestNewRejectsIncompleteEntities(t *testing.T) {
	_, err := New(Entity{Admin: stubStore{}})
	assert.Error(t, err)

	_, err = New(Entity{Kind: model.KindCourse})
	assert.ErrorContains(t, err, "no admin store")
}
