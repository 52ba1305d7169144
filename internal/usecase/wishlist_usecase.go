package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
)

// AddWishlistInput names the product to save for later.
type AddWishlistInput struct {
	ProductID string `json:"product" validate:"required,uuid"`
}

// WishlistOutput is the resolved wishlist with its product records.
type WishlistOutput struct {
	Count    int
	Products []*entity.Product
}

// WishlistUsecase manages the caller's saved-products list.
type WishlistUsecase interface {
	// GetWishlist resolves the saved product ids to full products,
	// preserving insertion order.
	GetWishlist(ctx context.Context, userID uuid.UUID) (*WishlistOutput, error)

	// AddProduct saves the product; saving it twice is a conflict.
	AddProduct(ctx context.Context, userID uuid.UUID, input *AddWishlistInput) error

	// RemoveProduct drops the product from the list; removing a product
	// that is not saved fails with a not-found.
	RemoveProduct(ctx context.Context, userID, productID uuid.UUID) error

	// ClearWishlist drops every saved product.
	ClearWishlist(ctx context.Context, userID uuid.UUID) error
}
