package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ishop/internal/delivery/context"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type wishlistService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// WishlistServiceParams holds dependencies for the wishlist service, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist resolves the saved product ids to full products in insertion
// order. Products deleted since they were saved are silently skipped, and
// the count reflects what was actually resolved.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*usecase.WishlistOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindManyByIDs(ctx, user.WishList)
	if err != nil {
		return nil, err
	}

	return &usecase.WishlistOutput{
		Count:    len(products),
		Products: products,
	}, nil
}

// AddProduct saves the product for later. The product must exist, and
// saving it twice is a conflict rather than a silent duplicate.
func (srv *wishlistService) AddProduct(ctx context.Context, userID uuid.UUID, input *usecase.AddWishlistInput) error {
	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return errors.Wrap(err, "invalid product id")
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.InWishList(productID) {
		return domainerrors.ErrAlreadyInWishlist
	}

	user.WishList = append(user.WishList, productID)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Debug("Wishlist product added", slog.Any("userID", userID), slog.Any("productID", productID))

	return nil
}

// RemoveProduct drops the product from the list. Removing a product that
// is not on the list fails with a not-found.
func (srv *wishlistService) RemoveProduct(ctx context.Context, userID, productID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.InWishList(productID) {
		return domainerrors.ErrNotInWishlist
	}

	filtered := user.WishList[:0]
	for _, id := range user.WishList {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	user.WishList = filtered

	return srv.userRepo.Update(ctx, user)
}

// ClearWishlist drops every saved product.
func (srv *wishlistService) ClearWishlist(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.WishList = nil

	return srv.userRepo.Update(ctx, user)
}
