package postgres

import (
	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
	"ishop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// categorySchema: slug is derived from the name on the write path; it is
// updatable so the service can re-derive it, but no input DTO exposes it
// to clients.
var categorySchema = newResourceSchema(
	"category",
	[]string{"name"},
	[]string{"name", "image", "status", "slug"},
	[]string{"id", "created_at", "updated_at"},
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	*crudRepository[model.CategoryModel, entity.Category]
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		crudRepository: newCRUDRepository(db, categorySchema, toCategoryDomain, fromCategoryDomain),
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Image:     data.Image,
		Status:    entity.CategoryStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:     data.ID,
		Name:   data.Name,
		Slug:   data.Slug,
		Image:  data.Image,
		Status: string(data.Status),
	}
}
