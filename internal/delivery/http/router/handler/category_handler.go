package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// CategoryHandler serves the category catalog endpoints.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// ListCategories returns a filtered, paginated page of categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	query := bindListQuery(c)

	categories, pagination, err := h.categoryUC.GetCategories(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(categories), pagination, newCategoryViews(categories))
}

// GetCategory returns one category by id.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryView(category))
}

// CreateCategory stores a new category with a derived slug.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid category input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newCategoryView(category))
}

// UpdateCategory applies a partial update; renaming re-derives the slug.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid category input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCategoryView(category))
}

// DeleteCategory removes a category.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
