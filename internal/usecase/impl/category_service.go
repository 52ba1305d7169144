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
	"ishop/internal/usecase"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for the category service, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) GetCategories(ctx context.Context, query *repository.ListQuery) ([]*entity.Category, *repository.Pagination, error) {
	categories, pagination, err := srv.categoryRepo.List(ctx, *query)
	if err != nil {
		return nil, nil, err
	}

	return categories, &pagination, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return srv.categoryRepo.FindByID(ctx, id)
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:   input.Name,
		Image:  input.Image,
		Status: entity.CategoryStatus(input.Status),
	}
	category.Derive()

	if err := srv.categoryRepo.Insert(ctx, category); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

// UpdateCategory applies a partial update. A name change re-derives the
// slug in the same write so the two can never drift apart.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	fields := input.Fields()
	if input.Name != nil && *input.Name != "" {
		fields["slug"] = slug.Make(*input.Name)
	}

	return srv.categoryRepo.UpdateFields(ctx, id, fields)
}

func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
