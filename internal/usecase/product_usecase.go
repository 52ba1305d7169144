package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
)

// CreateProductInput is the admin form for a new product.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=2,max=128"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lt=100"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	CategoryID  string   `json:"category" validate:"required,uuid"`
	ImageCover  string   `json:"imageCover"`
	Images      []string `json:"images"`
	SKU         string   `json:"sku"`
	Status      string   `json:"status" validate:"omitempty,oneof=InStock OutOfStock Discontinued"`
}

// UpdateProductInput is a partial update. Title, price and discount changes
// re-derive the slug and discounted price before the write.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=2,max=128"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Discount    *float64 `json:"discount" validate:"omitempty,gte=0,lt=100"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category" validate:"omitempty,uuid"`
	ImageCover  *string  `json:"imageCover"`
	Images      []string `json:"images"`
	SKU         *string  `json:"sku"`
	Status      *string  `json:"status" validate:"omitempty,oneof=InStock OutOfStock Discontinued"`
}

// Fields flattens the provided values into an update map keyed by column.
// Derived columns (slug, price_after_discount) are filled in by the service.
func (in *UpdateProductInput) Fields() FieldMap {
	f := FieldMap{}
	f.SetString("title", in.Title)
	f.SetString("description", in.Description)
	f.SetFloat("price", in.Price)
	f.SetFloat("discount", in.Discount)
	f.SetInt("quantity", in.Quantity)
	f.SetString("category_id", in.CategoryID)
	f.SetString("image_cover", in.ImageCover)
	f.SetStrings("images", in.Images)
	f.SetString("sku", in.SKU)
	f.SetString("status", in.Status)
	return f
}

// ProductUsecase manages the product catalog.
type ProductUsecase interface {
	GetProducts(ctx context.Context, query *repository.ListQuery) ([]*entity.Product, *repository.Pagination, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
