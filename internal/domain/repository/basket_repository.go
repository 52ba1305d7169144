package repository

import (
	"context"

	"ishop/internal/domain/entity"
	"ishop/internal/errors"

	"github.com/google/uuid"
)

// ErrBasketNotFound is returned when a user has no basket yet.
var ErrBasketNotFound = errors.New("basket not found")

// BasketRepository defines the operations for basket persistence. A user
// has at most one basket; the store must enforce a unique index on
// user_id so a concurrent create-if-absent race cannot produce duplicates.
type BasketRepository interface {
	// FindByUserID retrieves the user's basket with its line items.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Basket, error)

	// Create persists a new basket for the user.
	Create(ctx context.Context, basket *entity.Basket) error

	// Save persists the basket and its line items as given. Callers must
	// have recalculated totals beforehand.
	Save(ctx context.Context, basket *entity.Basket) error
}
