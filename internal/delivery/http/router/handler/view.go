// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
)

// View models decouple the wire shape from the domain entities so
// credential material and one-time codes never leak into a response.

// AddressView is the embedded shipping address shape.
type AddressView struct {
	Details     string `json:"details"`
	Governorate string `json:"governorate"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

func newAddressView(a *entity.Address) *AddressView {
	if a == nil {
		return nil
	}

	return &AddressView{
		Details:     a.Details,
		Governorate: a.Governorate,
		City:        a.City,
		PostalCode:  a.PostalCode,
	}
}

// UserView is the public shape of a user record.
type UserView struct {
	ID           uuid.UUID    `json:"id"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	ProfileImage string       `json:"profileImage,omitempty"`
	Address      *AddressView `json:"address,omitempty"`
	Role         string       `json:"role"`
	Active       bool         `json:"active"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func newUserView(u *entity.User) *UserView {
	return &UserView{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		Address:      newAddressView(u.Address),
		Role:         u.Role.String(),
		Active:       u.ActiveAccount,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func newUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, len(users))
	for i, u := range users {
		views[i] = newUserView(u)
	}

	return views
}

// CategoryView is the public shape of a category record.
type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCategoryView(c *entity.Category) *CategoryView {
	return &CategoryView{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Image:     c.Image,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, len(categories))
	for i, c := range categories {
		views[i] = newCategoryView(c)
	}

	return views
}

// ProductView is the public shape of a product record.
type ProductView struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Discount           float64   `json:"discount"`
	PriceAfterDiscount *float64  `json:"priceAfterDiscount,omitempty"`
	ImageCover         string    `json:"imageCover,omitempty"`
	Images             []string  `json:"images,omitempty"`
	SKU                string    `json:"sku,omitempty"`
	Quantity           int       `json:"quantity"`
	Category           uuid.UUID `json:"category"`
	Sold               int       `json:"sold"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func newProductView(p *entity.Product) *ProductView {
	return &ProductView{
		ID:                 p.ID,
		Title:              p.Title,
		Slug:               p.Slug,
		Description:        p.Description,
		Price:              p.Price,
		Discount:           p.Discount,
		PriceAfterDiscount: p.PriceAfterDiscount,
		ImageCover:         p.ImageCover,
		Images:             p.Images,
		SKU:                p.SKU,
		Quantity:           p.Quantity,
		Category:           p.CategoryID,
		Sold:               p.Sold,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}

	return views
}

// BasketItemView is a single basket line.
type BasketItemView struct {
	ID       uuid.UUID `json:"id"`
	Product  uuid.UUID `json:"product"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Total    float64   `json:"total"`
}

// BasketView is the public shape of a basket.
type BasketView struct {
	ID         uuid.UUID        `json:"id"`
	Items      []BasketItemView `json:"items"`
	TotalPrice float64          `json:"totalPrice"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func newBasketView(b *entity.Basket) *BasketView {
	items := make([]BasketItemView, len(b.Items))
	for i, item := range b.Items {
		items[i] = BasketItemView{
			ID:       item.ID,
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		}
	}

	return &BasketView{
		ID:         b.ID,
		Items:      items,
		TotalPrice: b.TotalPrice,
		UpdatedAt:  b.UpdatedAt,
	}
}

// OrderItemView is a single order line.
type OrderItemView struct {
	ID       uuid.UUID `json:"id"`
	Product  uuid.UUID `json:"product"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Total    float64   `json:"total"`
}

// OrderView is the public shape of an order.
type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	User          uuid.UUID       `json:"user"`
	Email         string          `json:"email"`
	Items         []OrderItemView `json:"items"`
	TotalPrice    float64         `json:"totalPrice"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentType   string          `json:"paymentType"`
	Address       AddressView     `json:"address"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func newOrderView(o *entity.Order) *OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			ID:       item.ID,
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		}
	}

	return &OrderView{
		ID:            o.ID,
		User:          o.UserID,
		Email:         o.Email,
		Items:         items,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentType:   string(o.PaymentType),
		Address:       *newAddressView(&o.Address),
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = newOrderView(o)
	}

	return views
}
