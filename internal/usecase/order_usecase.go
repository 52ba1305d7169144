package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
)

// CreateOrderInput selects the payment method for checkout.
type CreateOrderInput struct {
	PaymentType string `json:"paymentType" validate:"omitempty,oneof=onDelivery creditCard paypal"`
}

// UpdateOrderInput is the admin form for advancing an order.
type UpdateOrderInput struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=unpaid paid"`
}

// OrderUsecase implements checkout and order management.
type OrderUsecase interface {
	// Checkout converts the caller's basket into a pending order. The
	// user must have a complete shipping address and a non-empty basket.
	// The basket is cleared after the order is stored.
	Checkout(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// GetMyOrders lists the caller's own orders.
	GetMyOrders(ctx context.Context, userID uuid.UUID, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error)

	// GetMyOrder returns one of the caller's orders; another user's
	// order id resolves to not found.
	GetMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// CancelMyOrder cancels the caller's order when its status still
	// allows it.
	CancelMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// Admin surface.
	GetOrders(ctx context.Context, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
