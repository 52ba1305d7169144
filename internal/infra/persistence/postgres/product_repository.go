package postgres

import (
	"context"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
	"ishop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productSchema: slug and price_after_discount are derived on the write
// path, so clients can never set them through a partial update.
var productSchema = newResourceSchema(
	"product",
	[]string{"title", "description"},
	[]string{
		"title", "description", "price", "discount", "image_cover", "images",
		"sku", "quantity", "category_id", "sold", "status",
		"slug", "price_after_discount",
	},
	[]string{"id", "created_at", "updated_at"},
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	*crudRepository[model.ProductModel, entity.Product]
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		crudRepository: newCRUDRepository(db, productSchema, toProductDomain, fromProductDomain),
		db:             db,
	}
}

// FindManyByIDs resolves product references, preserving the order of the
// given IDs and skipping missing ones.
func (repo *productRepository) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(models))
	for _, m := range models {
		byID[m.ID] = toProductDomain(m)
	}

	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}

	return products, nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                 data.ID,
		Title:              data.Title,
		Slug:               data.Slug,
		Description:        data.Description,
		Price:              data.Price,
		Discount:           data.Discount,
		PriceAfterDiscount: data.PriceAfterDiscount,
		ImageCover:         data.ImageCover,
		Images:             data.Images,
		SKU:                data.SKU,
		Quantity:           data.Quantity,
		CategoryID:         data.CategoryID,
		Sold:               data.Sold,
		Status:             entity.ProductStatus(data.Status),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		Title:              data.Title,
		Slug:               data.Slug,
		Description:        data.Description,
		Price:              data.Price,
		Discount:           data.Discount,
		PriceAfterDiscount: data.PriceAfterDiscount,
		ImageCover:         data.ImageCover,
		Images:             data.Images,
		SKU:                data.SKU,
		Quantity:           data.Quantity,
		CategoryID:         data.CategoryID,
		Sold:               data.Sold,
		Status:             string(data.Status),
	}
}
