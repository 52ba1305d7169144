package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
)

// AddBasketItemInput puts a product into the caller's basket.
type AddBasketItemInput struct {
	ProductID string `json:"product" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// UpdateBasketItemInput changes the quantity of one basket line.
type UpdateBasketItemInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// BasketUsecase manages the per-user shopping basket. Every mutation
// recomputes line totals and the basket total before persisting, so stored
// totals can never drift from the items.
type BasketUsecase interface {
	// GetBasket returns the caller's basket. A basket only comes into
	// existence on the first add, so a user who never added anything
	// gets a not-found.
	GetBasket(ctx context.Context, userID uuid.UUID) (*entity.Basket, error)

	// AddItem adds the product at its current effective price, lazily
	// creating the basket. Adding a product already present is a no-op:
	// duplicate add-to-basket calls are idempotent, and quantity changes
	// go through UpdateItem.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddBasketItemInput) (*entity.Basket, error)

	// UpdateItem sets the quantity of the line holding the given product.
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, input *UpdateBasketItemInput) (*entity.Basket, error)

	// RemoveItem deletes one line from the basket.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Basket, error)

	// ClearBasket removes every line; a basket that was never created
	// reads as not-found.
	ClearBasket(ctx context.Context, userID uuid.UUID) error
}
