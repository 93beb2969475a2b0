package service

import (
	"context"

	"github.com/ischool/courseinfo-backend/internal/events"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/validator"
	"github.com/rs/zerolog"
)

// store is the data access every entity repository provides.
type store[T model.Record] interface {
	GetByID(ctx context.Context, id int) (*T, error)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// crud holds the read and write paths shared by every entity service.
// Writes reload the record so references come back resolved, then
// publish a change event.
type crud[T model.Record] struct {
	repo   store[T]
	broker events.Broker
	log    zerolog.Logger
}

func newCrud[T model.Record](repo store[T], broker events.Broker, log zerolog.Logger, component string) crud[T] {
	return crud[T]{
		repo:   repo,
		broker: broker,
		log:    log.With().Str("component", component).Logger(),
	}
}

// List returns every record in default order.
func (c crud[T]) List(ctx context.Context) ([]T, error) {
	return c.repo.List(ctx)
}

// GetByID returns one record or repository.ErrNotFound.
func (c crud[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return c.repo.GetByID(ctx, id)
}

// Count returns the number of records.
func (c crud[T]) Count(ctx context.Context) (int, error) {
	return c.repo.Count(ctx)
}

// Delete removes a record and announces it.
func (c crud[T]) Delete(ctx context.Context, id int) error {
	rec, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.publish(ctx, events.ActionDeleted, *rec)
	return nil
}

func (c crud[T]) create(ctx context.Context, rec *T) (*T, error) {
	if err := c.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	saved, err := c.repo.GetByID(ctx, (*rec).PK())
	if err != nil {
		return nil, err
	}
	c.publish(ctx, events.ActionCreated, *saved)
	return saved, nil
}

func (c crud[T]) update(ctx context.Context, rec *T) (*T, error) {
	if err := c.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	saved, err := c.repo.GetByID(ctx, (*rec).PK())
	if err != nil {
		return nil, err
	}
	c.publish(ctx, events.ActionUpdated, *saved)
	return saved, nil
}

// publish announces a committed write. The write already happened, so a
// broker failure is logged and swallowed.
func (c crud[T]) publish(ctx context.Context, action events.Action, rec T) {
	if c.broker == nil {
		return
	}
	change := events.NewChange(action, rec)
	if err := c.broker.Publish(ctx, change); err != nil {
		c.log.Warn().Err(err).
			Str("entity", string(change.Entity)).
			Int("id", change.ID).
			Msg("Failed to publish change")
	}
}

// requiredInt unwraps an integer payload field, reporting a missing one the
// way the validator does.
func requiredInt(field string, v *int) (int, error) {
	if v == nil {
		return 0, validator.FieldErrors{field: field + " is a required field"}
	}
	return *v, nil
}

func intPtr(v int) *int { return &v }
