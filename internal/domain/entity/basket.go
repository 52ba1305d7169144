package entity

import (
	"time"

	"github.com/google/uuid"
)

// BasketItem is a single line in a basket. Price is snapshotted from the
// product's effective price when the item is added; later product price
// changes do not retroactively alter it.
type BasketItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64
	Total     float64 // Derived: Price * Quantity.
}

// Basket holds a user's pending line items. There is exactly one basket
// per user, enforced by a unique index on UserID.
type Basket struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Items      []BasketItem
	TotalPrice float64 // Derived: sum of item totals.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Recalculate recomputes every item total and the basket total from the
// stored prices and quantities. Callers must invoke it before every save;
// totals are never trusted from input.
func (b *Basket) Recalculate() {
	b.TotalPrice = 0
	for i := range b.Items {
		b.Items[i].Total = b.Items[i].Price * float64(b.Items[i].Quantity)
		b.TotalPrice += b.Items[i].Total
	}
}

// ItemByProduct returns the line item for the given product, or nil.
func (b *Basket) ItemByProduct(productID uuid.UUID) *BasketItem {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			return &b.Items[i]
		}
	}

	return nil
}

// RemoveItem deletes the line item with the given item ID (not product ID)
// and reports whether anything was removed.
func (b *Basket) RemoveItem(itemID uuid.UUID) bool {
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)

			return true
		}
	}

	return false
}

// IsEmpty reports whether the basket has no line items.
func (b *Basket) IsEmpty() bool {
	return len(b.Items) == 0
}
