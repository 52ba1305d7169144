package repository

import (
	"context"

	"ishop/internal/domain/entity"
	"ishop/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category lookup misses.
var ErrCategoryNotFound = errors.New("category not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	CRUDRepository[entity.Product]

	// FindManyByIDs resolves a set of product references, preserving the
	// order of the given IDs and skipping missing ones.
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
}

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	CRUDRepository[entity.Category]
}
