// Package registry describes every entity the service manages: its schema,
// whether it has public pages, and how the admin console reads and writes it.
package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ischool/courseinfo-backend/internal/model"
)

// FieldType is the admin-facing type of a field.
type FieldType string

const (
	FieldInt       FieldType = "int"
	FieldText      FieldType = "text"
	FieldReference FieldType = "reference"
)

// Field describes one writable column.
type Field struct {
	Name      string     `json:"name"`
	Label     string     `json:"label"`
	Type      FieldType  `json:"type"`
	MaxLength int        `json:"max_length,omitempty"`
	Ref       model.Kind `json:"ref,omitempty"`
}

// Schema lists an entity's fields, unique key combinations and default ordering.
type Schema struct {
	Fields   []Field    `json:"fields"`
	Unique   [][]string `json:"unique,omitempty"`
	Ordering []string   `json:"ordering"`
}

// AdminStore is the persistence surface the admin console and the CLI use.
// Payloads are raw JSON matching the entity's request type.
type AdminStore interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]model.Record, error)
	Get(ctx context.Context, id int) (model.Record, error)
	Create(ctx context.Context, raw json.RawMessage) (model.Record, error)
	Update(ctx context.Context, id int, raw json.RawMessage) (model.Record, error)
	Delete(ctx context.Context, id int) error
}

// Entity is one registered entity kind.
type Entity struct {
	Kind    model.Kind
	Title   string
	Plural  string
	Exposed bool
	Schema  Schema
	Admin   AdminStore
}

// Registry is the immutable set of entities built at start-up.
type Registry struct {
	order  []model.Kind
	byKind map[model.Kind]Entity
}

// New builds a registry. Kinds must be unique and every entity needs an admin store.
func New(entities ...Entity) (*Registry, error) {
	r := &Registry{byKind: make(map[model.Kind]Entity, len(entities))}
	for _, e := range entities {
		if e.Kind == "" {
			return nil, fmt.Errorf("registry: entity without kind")
		}
		if _, dup := r.byKind[e.Kind]; dup {
			return nil, fmt.Errorf("registry: %s registered twice", e.Kind)
		}
		if e.Admin == nil {
			return nil, fmt.Errorf("registry: %s has no admin store", e.Kind)
		}
		r.byKind[e.Kind] = e
		r.order = append(r.order, e.Kind)
	}
	return r, nil
}

// Lookup returns the entity registered under kind.
func (r *Registry) Lookup(kind model.Kind) (Entity, bool) {
	e, ok := r.byKind[kind]
	return e, ok
}

// All returns every entity in registration order.
func (r *Registry) All() []Entity {
	out := make([]Entity, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKind[k])
	}
	return out
}

// Exposed returns the entities that have public list and detail pages.
func (r *Registry) Exposed() []Entity {
	var out []Entity
	for _, e := range r.All() {
		if e.Exposed {
			out = append(out, e)
		}
	}
	return out
}
