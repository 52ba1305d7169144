package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// UserHandler serves the admin account surface and the signed-in user's
// self-service endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUC: userUC, logger: logger}
}

// ListUsers returns a filtered, paginated page of accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := bindListQuery(c)

	users, pagination, err := h.userUC.GetUsers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, len(users), pagination, newUserViews(users))
}

// GetUser returns one account by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserView(user))
}

// CreateUser provisions an account directly, pre-activated.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid user input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newUserView(user))
}

// UpdateUser applies a partial update to any account, including role and
// activation changes.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid user input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserView(user))
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetMe returns the caller's own record.
func (h *UserHandler) GetMe(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	return response.OK(c, newUserView(user))
}

// UpdateMe applies a partial update to the caller's own record. Role and
// activation fields are dropped even when present in the payload.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid profile input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserView(updated))
}

// ChangeMyPassword rotates the caller's password and issues a fresh token.
func (h *UserHandler) ChangeMyPassword(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid password input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.userUC.ChangePassword(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, newUserView(out.User), out.Token)
}

// DeactivateMe soft-disables the caller's own account.
func (h *UserHandler) DeactivateMe(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	if err := h.userUC.DeactivateAccount(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account deactivated", nil)
}
