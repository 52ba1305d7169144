// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ishop/internal/delivery/http/middleware"
	"ishop/internal/delivery/http/response"
	"ishop/internal/delivery/http/router/handler"
	"ishop/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	BasketHandler   *handler.BasketHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	ImageHandler    *handler.ImageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	basketHandler   *handler.BasketHandler
	orderHandler    *handler.OrderHandler
	wishlistHandler *handler.WishlistHandler
	imageHandler    *handler.ImageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		basketHandler:   params.BasketHandler,
		orderHandler:    params.OrderHandler,
		wishlistHandler: params.WishlistHandler,
		imageHandler:    params.ImageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Anything that misses every route gets the uniform error envelope.
	echo.NotFoundHandler = func(c echo.Context) error {
		return response.Fail(c, http.StatusNotFound, "Route not found", "")
	}

	authN := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/verify-sign-up-code", r.authHandler.VerifySignUpCode)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/forget-password", r.authHandler.ForgetPassword)
		authGroup.POST("/verify-pw-reset-code", r.authHandler.VerifyResetCode)
		authGroup.PUT("/reset-password", r.authHandler.ResetPassword)
	}

	// Self-service routes for the signed-in user
	meGroup := e.Group("/users/me", authN)
	{
		meGroup.GET("", r.userHandler.GetMe)
		meGroup.PUT("", r.userHandler.UpdateMe)
		meGroup.PUT("/password", r.userHandler.ChangeMyPassword)
		meGroup.DELETE("", r.userHandler.DeactivateMe)
	}

	// Account management, admin only
	userGroup := e.Group("/users", authN, adminOnly)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Category catalog: public reads, admin writes
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.POST("", r.categoryHandler.CreateCategory, authN, adminOnly)
		categoryGroup.PUT("/:id", r.categoryHandler.UpdateCategory, authN, adminOnly)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, authN, adminOnly)
	}

	// Product catalog: public reads, admin writes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.POST("", r.productHandler.CreateProduct, authN, adminOnly)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, authN, adminOnly)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, authN, adminOnly)
	}

	// Basket routes, always scoped to the signed-in user
	basketGroup := e.Group("/basket", authN)
	{
		basketGroup.GET("", r.basketHandler.GetBasket)
		basketGroup.POST("", r.basketHandler.AddItem)
		basketGroup.PUT("/:productId", r.basketHandler.UpdateItem)
		basketGroup.DELETE("/:itemId", r.basketHandler.RemoveItem)
		basketGroup.DELETE("", r.basketHandler.ClearBasket)
	}

	// Order routes: customers see their own, admins see everything
	orderGroup := e.Group("/orders", authN)
	{
		orderGroup.POST("", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder, adminOnly)
	}

	// Image uploads feed the image URL fields on users, products and
	// categories
	e.POST("/images", r.imageHandler.Upload, authN)

	// Wishlist routes, always scoped to the signed-in user
	wishlistGroup := e.Group("/wishlist", authN)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.PUT("", r.wishlistHandler.AddProduct)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.RemoveProduct)
		wishlistGroup.DELETE("", r.wishlistHandler.ClearWishlist)
	}
}
