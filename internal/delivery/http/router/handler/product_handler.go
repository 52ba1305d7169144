package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(productUC usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// ListProducts returns a filtered, paginated page of products. Filtering,
// sorting, keyword search and field projection all come from the query
// string.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	query := bindListQuery(c)

	products, pagination, err := h.productUC.GetProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(products), pagination, newProductViews(products))
}

// GetProduct returns one product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductView(product))
}

// CreateProduct stores a new product under an existing category.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newProductView(product))
}

// UpdateProduct applies a partial update, re-deriving slug and discounted
// price when their source fields change.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProductView(product))
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
