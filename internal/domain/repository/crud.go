package repository

import (
	"context"

	"github.com/google/uuid"
)

// CRUDRepository is the generic persistence contract shared by every
// resource collection. Concrete repositories embed it and add
// entity-specific lookups.
//
// UpdateFields applies a partial update: only the supplied fields are
// touched, and implementations drop anything outside the resource's
// static updatable-field allowlist. Values must already be non-empty;
// collecting "explicitly and non-trivially provided" fields is the
// caller's job.
type CRUDRepository[E any] interface {
	// Insert persists a new entity and fills in generated fields.
	Insert(ctx context.Context, entity *E) error

	// FindByID retrieves a single entity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// UpdateFields applies a partial update and returns the updated entity.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*E, error)

	// DeleteByID removes the entity with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// List performs a bounded collection read described by the query and
	// returns pagination metadata computed from the post-filter count.
	List(ctx context.Context, q ListQuery) ([]*E, Pagination, error)
}
