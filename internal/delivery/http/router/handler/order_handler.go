package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/delivery/http/response"
	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
	"ishop/internal/usecase"
)

// OrderHandler serves the order endpoints. The collection routes are
// shared between customers and admins: a customer only ever sees their
// own orders, while an admin sees and manages everything.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Checkout converts the caller's basket into a pending order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid order input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newOrderView(order))
}

// ListOrders returns every order for an admin and the caller's own
// orders for anyone else.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	query := bindListQuery(c)

	var (
		orders     []*entity.Order
		pagination *repository.Pagination
		err        error
	)
	if user.Role == entity.RoleAdmin {
		orders, pagination, err = h.orderUC.GetOrders(c.Request().Context(), query)
	} else {
		orders, pagination, err = h.orderUC.GetMyOrders(c.Request().Context(), user.ID, query)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(orders), pagination, newOrderViews(orders))
}

// GetOrder returns one order. Admins can fetch any order; a customer
// asking for someone else's order gets a not-found.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var order *entity.Order
	if user.Role == entity.RoleAdmin {
		order, err = h.orderUC.GetOrder(c.Request().Context(), id)
	} else {
		order, err = h.orderUC.GetMyOrder(c.Request().Context(), user.ID, id)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newOrderView(order))
}

// UpdateOrder advances an order through its lifecycle. Admins move the
// fulfilment and payment status; a customer's only allowed change is
// cancelling their own order while its status still permits it.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if user.Role != entity.RoleAdmin {
		order, err := h.orderUC.CancelMyOrder(c.Request().Context(), user.ID, id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.OK(c, newOrderView(order))
	}

	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid order input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newOrderView(order))
}

// DeleteOrder removes an order record entirely.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
