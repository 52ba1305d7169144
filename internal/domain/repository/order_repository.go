package repository

import (
	"context"

	"ishop/internal/domain/entity"
	"ishop/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned both for a missing order and for an order
// owned by another user, so the API cannot leak the existence of other
// users' orders.
var ErrOrderNotFound = errors.New("order not found or unauthorized")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	CRUDRepository[entity.Order]

	// FindByIDAndUser retrieves an order scoped to its owner. Ownership is
	// enforced by the lookup predicate itself.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders owned by the user.
	ListByUser(ctx context.Context, userID uuid.UUID, q ListQuery) ([]*entity.Order, Pagination, error)

	// Save persists mutations to an existing order (status transitions).
	Save(ctx context.Context, order *entity.Order) error
}
