package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type basketService struct {
	basketRepo  repository.BasketRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// BasketServiceParams holds dependencies for the basket service, injected by Fx.
type BasketServiceParams struct {
	fx.In

	BasketRepo  repository.BasketRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewBasketService is the constructor for basketService.
func NewBasketService(params BasketServiceParams) usecase.BasketUsecase {
	return &basketService{
		basketRepo:  params.BasketRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *basketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// getOrCreate fetches the user's basket, creating an empty one on first
// access. When a concurrent request wins the create race, the unique index
// on user_id rejects the duplicate and the winner's basket is re-fetched.
func (srv *basketService) getOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	basket, err := srv.basketRepo.FindByUserID(ctx, userID)
	if err == nil {
		return basket, nil
	}
	if !errors.Is(err, repository.ErrBasketNotFound) {
		return nil, err
	}

	basket = &entity.Basket{UserID: userID}
	if err := srv.basketRepo.Create(ctx, basket); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return srv.basketRepo.FindByUserID(ctx, userID)
		}

		return nil, err
	}

	return basket, nil
}

// require fetches the user's basket, translating a missing basket into a
// not-found error rather than creating one.
func (srv *basketService) require(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	basket, err := srv.basketRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, domainerrors.NewNotFoundError("basket", userID)
		}

		return nil, err
	}

	return basket, nil
}

func (srv *basketService) GetBasket(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	return srv.require(ctx, userID)
}

// AddItem puts the product into the basket at its current effective price,
// lazily creating the basket on first use. Adding a product that is
// already present leaves the existing line untouched: duplicate
// add-to-basket calls are idempotent by design, and quantity changes go
// through UpdateItem.
func (srv *basketService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddBasketItemInput) (*entity.Basket, error) {
	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product id")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	basket, err := srv.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if basket.ItemByProduct(productID) != nil {
		return basket, nil
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	basket.Items = append(basket.Items, entity.BasketItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     product.EffectivePrice(),
	})

	basket.Recalculate()
	if err := srv.basketRepo.Save(ctx, basket); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Basket item added", slog.Any("userID", userID), slog.Any("productID", productID))

	return basket, nil
}

// UpdateItem sets the quantity of the line holding the given product.
func (srv *basketService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, input *usecase.UpdateBasketItemInput) (*entity.Basket, error) {
	basket, err := srv.require(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := basket.ItemByProduct(productID)
	if item == nil {
		return nil, domainerrors.NewNotFoundError("item", productID)
	}

	item.Quantity = input.Quantity
	basket.Recalculate()
	if err := srv.basketRepo.Save(ctx, basket); err != nil {
		return nil, err
	}

	return basket, nil
}

func (srv *basketService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Basket, error) {
	basket, err := srv.require(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !basket.RemoveItem(itemID) {
		return nil, domainerrors.NewNotFoundError("item", itemID)
	}

	basket.Recalculate()
	if err := srv.basketRepo.Save(ctx, basket); err != nil {
		return nil, err
	}

	return basket, nil
}

// ClearBasket removes every line. Like GetBasket, a basket that was
// never created reads as not-found.
func (srv *basketService) ClearBasket(ctx context.Context, userID uuid.UUID) error {
	basket, err := srv.require(ctx, userID)
	if err != nil {
		return err
	}

	basket.Items = nil
	basket.Recalculate()

	return srv.basketRepo.Save(ctx, basket)
}
