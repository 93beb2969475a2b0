// Package events carries admin change notifications from writers to
// connected admin consoles.
package events

import (
	"context"
	"time"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// Action is the kind of write that produced a Change.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change describes one committed admin write.
type Change struct {
	Entity model.Kind `json:"entity"`
	Action Action     `json:"action"`
	ID     int        `json:"id"`
	Label  string     `json:"label"`
	At     time.Time  `json:"at"`
}

// NewChange stamps a change for rec with the current time.
func NewChange(action Action, rec model.Record) Change {
	return Change{
		Entity: rec.Kind(),
		Action: action,
		ID:     rec.PK(),
		Label:  rec.String(),
		At:     time.Now().UTC(),
	}
}

// Broker fans changes out to subscribers. Delivery is best effort: a slow
// subscriber misses events rather than blocking writers.
type Broker interface {
	Publish(ctx context.Context, c Change) error
	// Subscribe returns a channel of changes and a function that ends the
	// subscription. The channel is closed once ctx is done or cancel is called.
	Subscribe(ctx context.Context) (<-chan Change, func())
	Close() error
}

const subscriberBuffer = 32
