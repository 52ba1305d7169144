package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ishop/internal/domain/entity"
	mockRepo "ishop/internal/mocks/repository"
	"ishop/internal/usecase"
)

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	t.Helper()

	categoryRepo := &mockRepo.MockCategoryRepository{}
	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return service, categoryRepo
}

func TestCategoryService_CreateCategory_DerivesSlugAndStatus(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)
	ctx := context.Background()

	categoryRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", category.Slug)
	assert.Equal(t, entity.CategoryActive, category.Status)
}

func TestCategoryService_UpdateCategory_NameRederivesSlug(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	name := "Office Supplies"

	var fields map[string]any
	categoryRepo.On("UpdateFields", ctx, categoryID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.Category{ID: categoryID, Name: name, Slug: "office-supplies"}, nil)

	_, err := service.UpdateCategory(ctx, categoryID, &usecase.UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "office-supplies", fields["slug"])
}

func TestCategoryService_UpdateCategory_EmptyInputLeavesRecordAlone(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	var fields map[string]any
	categoryRepo.On("UpdateFields", ctx, categoryID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.Category{ID: categoryID}, nil)

	_, err := service.UpdateCategory(ctx, categoryID, &usecase.UpdateCategoryInput{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}
