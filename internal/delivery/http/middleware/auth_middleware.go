package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/usecase"
)

// AuthMiddleware guards routes behind a valid bearer token. The token is
// resolved to a live user record on every request, so deactivation and
// password changes take effect immediately rather than at token expiry.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and binds the authenticated user
// to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return domainerrors.ErrUnauthorized
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetUser(c)
			if user == nil {
				return domainerrors.ErrUnauthorized
			}

			if !allowed.Contains(user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
