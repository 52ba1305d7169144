package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// orderTransitions is the explicit status graph. delivered and cancelled
// are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
}

// CanTransitionTo reports whether the status graph permits moving from s
// to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// PaymentStatus represents whether an order has been paid for.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// PaymentType represents the payment method chosen at checkout.
type PaymentType string

const (
	PaymentOnDelivery PaymentType = "onDelivery"
	PaymentCreditCard PaymentType = "creditCard"
	PaymentPaypal     PaymentType = "paypal"
)

// IsValid checks if the PaymentType is a valid value.
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentOnDelivery, PaymentCreditCard, PaymentPaypal:
		return true
	default:
		return false
	}
}

// OrderItem is a line item copied verbatim from the basket at checkout.
// Items are never mutated after the order is created.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64
	Total     float64
}

// Order is an immutable snapshot of a basket at checkout time, exclusively
// owned by UserID. Only status transitions and admin field updates are
// permitted after creation.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Email         string
	Items         []OrderItem
	TotalPrice    float64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentType   PaymentType
	Address       Address // Copied from the user's profile at checkout.
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrderFromBasket builds the order snapshot for a checkout. Item prices
// and totals are copied verbatim from the basket, which recomputed them on
// its last save.
func NewOrderFromBasket(user *User, basket *Basket, paymentType PaymentType) *Order {
	items := make([]OrderItem, len(basket.Items))
	for i, item := range basket.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		}
	}

	return &Order{
		UserID:        user.ID,
		Email:         user.Email,
		Items:         items,
		TotalPrice:    basket.TotalPrice,
		Status:        OrderPending,
		PaymentStatus: PaymentUnpaid,
		PaymentType:   paymentType,
		Address:       *user.Address,
	}
}
