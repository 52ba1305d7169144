package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/delivery/http/response"
	"ishop/internal/usecase"
)

// WishlistHandler serves the caller's saved-products list.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlistUC usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: wishlistUC}
}

// GetWishlist resolves the saved ids to product records. Products removed
// from the catalog since being saved are silently skipped.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	out, err := h.wishlistUC.GetWishlist(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, out.Count, nil, newProductViews(out.Products))
}

// AddProduct saves a product for later; saving it a second time is a
// conflict.
func (h *WishlistHandler) AddProduct(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	var input usecase.AddWishlistInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid wishlist input", "")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.wishlistUC.AddProduct(c.Request().Context(), user.ID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Product added to wishlist", nil)
}

// RemoveProduct drops one product from the list.
func (h *WishlistHandler) RemoveProduct(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.wishlistUC.RemoveProduct(c.Request().Context(), user.ID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Product removed from wishlist", nil)
}

// ClearWishlist drops every saved product.
func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	if err := h.wishlistUC.ClearWishlist(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Wishlist cleared", nil)
}
