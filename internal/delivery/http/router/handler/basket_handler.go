package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// BasketHandler serves the caller's shopping basket. Every endpoint is
// scoped to the signed-in user; there is no cross-user basket access.
type BasketHandler struct {
	basketUC usecase.BasketUsecase
}

// NewBasketHandler is the constructor for BasketHandler, injected by Fx.
func NewBasketHandler(basketUC usecase.BasketUsecase) *BasketHandler {
	return &BasketHandler{basketUC: basketUC}
}

// GetBasket returns the caller's basket, or a not-found when nothing has
// ever been added.
func (h *BasketHandler) GetBasket(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	basket, err := h.basketUC.GetBasket(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newBasketView(basket))
}

// AddItem puts a product into the basket at its current effective price,
// creating the basket on first use. Re-adding a product already present
// leaves the basket unchanged.
func (h *BasketHandler) AddItem(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	var input usecase.AddBasketItemInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid basket input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	basket, err := h.basketUC.AddItem(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newBasketView(basket))
}

// UpdateItem sets the quantity of the line holding the given product.
func (h *BasketHandler) UpdateItem(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var input usecase.UpdateBasketItemInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid basket input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	basket, err := h.basketUC.UpdateItem(c.Request().Context(), user.ID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newBasketView(basket))
}

// RemoveItem deletes one line from the basket by its item id.
func (h *BasketHandler) RemoveItem(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}

	basket, err := h.basketUC.RemoveItem(c.Request().Context(), user.ID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newBasketView(basket))
}

// ClearBasket removes every line.
func (h *BasketHandler) ClearBasket(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	if err := h.basketUC.ClearBasket(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Basket cleared", nil)
}
