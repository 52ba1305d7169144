package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, logger: logger}
}

// SignUp handles the registration request and sends a verification code.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid sign-up input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUC.SignUp(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Verification code sent to email", nil)
}

// VerifySignUpCode activates the account and signs the user in.
func (h *AuthHandler) VerifySignUpCode(c echo.Context) error {
	var input usecase.VerifyCodeInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid verification input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUC.VerifySignUpCode(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, newUserView(out.User), out.Token)
}

// SignIn handles the login request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid sign-in input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUC.SignIn(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, newUserView(out.User), out.Token)
}

// ForgetPassword sends a password reset code.
func (h *AuthHandler) ForgetPassword(c echo.Context) error {
	var input usecase.ForgetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUC.ForgetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Reset code sent to email", nil)
}

// VerifyResetCode marks the pending reset code as verified.
func (h *AuthHandler) VerifyResetCode(c echo.Context) error {
	var input usecase.VerifyCodeInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid verification input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUC.VerifyResetCode(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Reset code verified", nil)
}

// ResetPassword sets the new password and signs the user in.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid reset input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUC.ResetPassword(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, newUserView(out.User), out.Token)
}
