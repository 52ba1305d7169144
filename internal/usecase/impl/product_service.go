package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/fx"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) GetProducts(ctx context.Context, query *repository.ListQuery) ([]*entity.Product, *repository.Pagination, error) {
	products, pagination, err := srv.productRepo.List(ctx, *query)
	if err != nil {
		return nil, nil, err
	}

	return products, &pagination, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return srv.productRepo.FindByID(ctx, id)
}

// CreateProduct stores a new catalog item. The category reference must
// resolve, and the slug and discounted price are derived before the write.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid category id")
	}
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		Quantity:    input.Quantity,
		CategoryID:  categoryID,
		ImageCover:  input.ImageCover,
		Images:      input.Images,
		SKU:         input.SKU,
		Status:      entity.ProductStatus(input.Status),
	}
	product.Derive()

	if err := srv.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct applies a partial update. Title changes re-derive the
// slug; price or discount changes re-derive the discounted price from the
// record's post-update values, so the derived fields ride along in the
// same write.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	fields := input.Fields()

	if input.CategoryID != nil && *input.CategoryID != "" {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid category id")
		}
		if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	if input.Title != nil && *input.Title != "" {
		fields["slug"] = slug.Make(*input.Title)
	}

	if input.Price != nil || input.Discount != nil {
		current, err := srv.productRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		derived := *current
		if input.Price != nil {
			derived.Price = *input.Price
		}
		if input.Discount != nil {
			derived.Discount = *input.Discount
		}
		derived.Derive()

		fields["price_after_discount"] = derived.PriceAfterDiscount
	}

	return srv.productRepo.UpdateFields(ctx, id, fields)
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}
