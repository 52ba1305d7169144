package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ProductStatus represents the availability state of a product.
type ProductStatus string

const (
	ProductInStock      ProductStatus = "InStock"
	ProductOutOfStock   ProductStatus = "OutOfStock"
	ProductDiscontinued ProductStatus = "Discontinued"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductInStock, ProductOutOfStock, ProductDiscontinued:
		return true
	default:
		return false
	}
}

// Product is a catalog item. Price-related derived fields are recomputed
// from Price/Discount on every save and are never trusted from input.
type Product struct {
	ID                 uuid.UUID
	Title              string
	Slug               string // Derived from Title.
	Description        string
	Price              float64
	Discount           float64  // Percentage, 0 means no discount.
	PriceAfterDiscount *float64 // Derived, set only when Discount > 0.
	ImageCover         string
	Images             []string
	SKU                string
	Quantity           int
	CategoryID         uuid.UUID // Required, must resolve to a Category.
	Sold               int
	Status             ProductStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectivePrice returns the discounted price when a discount is set,
// otherwise the base price. Baskets snapshot this value at add time.
func (p *Product) EffectivePrice() float64 {
	if p.PriceAfterDiscount != nil {
		return *p.PriceAfterDiscount
	}

	return p.Price
}

// Derive recomputes the slug and discounted price from the current
// Title/Price/Discount. It must be called before every save.
func (p *Product) Derive() {
	p.Slug = slug.Make(p.Title)

	if p.Discount > 0 {
		discounted := round2(p.Price * (1 - p.Discount/100))
		p.PriceAfterDiscount = &discounted
	} else {
		p.PriceAfterDiscount = nil
	}

	if p.Status == "" {
		p.Status = ProductInStock
	}
}

// round2 rounds to two decimal places, matching how prices are displayed.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
