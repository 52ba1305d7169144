package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	basketRepo repository.BasketRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	BasketRepo repository.BasketRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:  params.OrderRepo,
		basketRepo: params.BasketRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the caller's basket into a pending order. The address
// check runs before anything is written, so an incomplete profile fails
// the whole operation cleanly. Clearing the basket afterwards is
// best-effort: the order is already committed, and a leftover basket is
// recoverable while a lost order is not.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.Address.IsComplete() {
		return nil, domainerrors.ErrIncompleteAddress
	}

	basket, err := srv.basketRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			return nil, domainerrors.NewNotFoundError("basket", userID)
		}

		return nil, err
	}
	if basket.IsEmpty() {
		return nil, domainerrors.ErrBasketEmpty
	}

	paymentType := entity.PaymentType(input.PaymentType)
	if paymentType == "" {
		paymentType = entity.PaymentOnDelivery
	}
	if !paymentType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment type")
	}

	order := entity.NewOrderFromBasket(user, basket, paymentType)
	if err := srv.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}

	basket.Items = nil
	basket.Recalculate()
	if err := srv.basketRepo.Save(ctx, basket); err != nil {
		srv.log(ctx).Warn("Failed to clear basket after checkout", slog.Any("userID", userID), slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed", slog.Any("userID", userID), slog.Any("orderID", order.ID), slog.Float64("total", order.TotalPrice))

	return order, nil
}

func (srv *orderService) GetMyOrders(ctx context.Context, userID uuid.UUID, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error) {
	orders, pagination, err := srv.orderRepo.ListByUser(ctx, userID, *query)
	if err != nil {
		return nil, nil, err
	}

	return orders, &pagination, nil
}

// GetMyOrder returns one of the caller's orders. Another user's order id
// misses the scoped lookup, so existence is never leaked.
func (srv *orderService) GetMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewNotFoundError("order", orderID)
		}

		return nil, err
	}

	return order, nil
}

// CancelMyOrder cancels the caller's order when the status graph still
// allows it. Shipped and terminal orders cannot be cancelled.
func (srv *orderService) CancelMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewNotFoundError("order", orderID)
		}

		return nil, err
	}

	if !order.Status.CanTransitionTo(entity.OrderCancelled) {
		return nil, domainerrors.ErrOrderNotCancellable
	}

	order.Status = entity.OrderCancelled
	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", slog.Any("userID", userID), slog.Any("orderID", orderID))

	return order, nil
}

func (srv *orderService) GetOrders(ctx context.Context, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error) {
	orders, pagination, err := srv.orderRepo.List(ctx, *query)
	if err != nil {
		return nil, nil, err
	}

	return orders, &pagination, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return srv.orderRepo.FindByID(ctx, id)
}

// UpdateOrder is the admin path for advancing an order. Status changes
// must follow the transition graph; reaching delivered stamps the
// delivery time.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := usecase.FieldMap{}

	if input.Status != nil && *input.Status != "" {
		next := entity.OrderStatus(*input.Status)
		if next != order.Status {
			if !order.Status.CanTransitionTo(next) {
				return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
					string(order.Status) + " -> " + string(next))
			}

			fields["status"] = string(next)
			if next == entity.OrderDelivered {
				fields["delivered_at"] = time.Now()
			}
		}
	}

	if input.PaymentStatus != nil && *input.PaymentStatus != "" {
		fields["payment_status"] = *input.PaymentStatus
	}

	return srv.orderRepo.UpdateFields(ctx, id, fields)
}

func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := srv.orderRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id))

	return nil
}
