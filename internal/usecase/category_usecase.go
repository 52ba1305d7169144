package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
)

// CreateCategoryInput is the admin form for a new category.
type CreateCategoryInput struct {
	Name   string `json:"name" validate:"required,min=2,max=64"`
	Image  string `json:"image"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive Archived"`
}

// UpdateCategoryInput is a partial update; the slug is re-derived whenever
// the name changes.
type UpdateCategoryInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=64"`
	Image  *string `json:"image"`
	Status *string `json:"status" validate:"omitempty,oneof=Active Inactive Archived"`
}

// Fields flattens the provided values into an update map keyed by column.
func (in *UpdateCategoryInput) Fields() FieldMap {
	f := FieldMap{}
	f.SetString("name", in.Name)
	f.SetString("image", in.Image)
	f.SetString("status", in.Status)
	return f
}

// CategoryUsecase manages the product category catalog.
type CategoryUsecase interface {
	GetCategories(ctx context.Context, query *repository.ListQuery) ([]*entity.Category, *repository.Pagination, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
