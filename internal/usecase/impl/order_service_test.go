package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	mockRepo "ishop/internal/mocks/repository"
	"ishop/internal/usecase"
)

type orderServiceFixtures struct {
	service    usecase.OrderUsecase
	orderRepo  *mockRepo.MockOrderRepository
	basketRepo *mockRepo.MockBasketRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := &mockRepo.MockOrderRepository{}
	basketRepo := &mockRepo.MockBasketRepository{}
	userRepo := &mockRepo.MockUserRepository{}

	service := NewOrderService(OrderServiceParams{
		OrderRepo:  orderRepo,
		BasketRepo: basketRepo,
		UserRepo:   userRepo,
		Logger:     newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:    service,
		orderRepo:  orderRepo,
		basketRepo: basketRepo,
		userRepo:   userRepo,
	}
}

func completeAddress() *entity.Address {
	return &entity.Address{
		Details:     "12 Nile St, Apt 3",
		Governorate: "Cairo",
		City:        "Cairo",
		PostalCode:  "11511",
	}
}

func TestOrderService_Checkout_IncompleteAddressFailsFirst(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Address: &entity.Address{City: "Cairo"}}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	_, err := fx.service.Checkout(ctx, userID, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrIncompleteAddress)

	// The address gate runs before anything else is touched.
	fx.basketRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_EmptyBasket(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Address: completeAddress()}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.basketRepo.On("FindByUserID", ctx, userID).
		Return(&entity.Basket{ID: uuid.New(), UserID: userID}, nil)

	_, err := fx.service.Checkout(ctx, userID, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrBasketEmpty)
}

func TestOrderService_Checkout_SnapshotsBasket(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	user := &entity.User{ID: userID, Email: "dina@example.com", Address: completeAddress()}
	basket := &entity.Basket{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.BasketItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 2, Price: 40, Total: 80},
		},
		TotalPrice: 80,
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.basketRepo.On("FindByUserID", ctx, userID).Return(basket, nil)
	fx.orderRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.basketRepo.On("Save", ctx, mock.AnythingOfType("*entity.Basket")).Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CreateOrderInput{})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentUnpaid, order.PaymentStatus)
	assert.Equal(t, entity.PaymentOnDelivery, order.PaymentType)
	assert.Equal(t, 80.0, order.TotalPrice)
	assert.Equal(t, *user.Address, order.Address)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)

	// The basket is emptied after the order is committed.
	assert.True(t, basket.IsEmpty())
	assert.Equal(t, 0.0, basket.TotalPrice)
}

func TestOrderService_Checkout_BasketClearFailureKeepsOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Address: completeAddress()}
	basket := &entity.Basket{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.BasketItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 15, Total: 15},
		},
		TotalPrice: 15,
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.basketRepo.On("FindByUserID", ctx, userID).Return(basket, nil)
	fx.orderRepo.On("Insert", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.basketRepo.On("Save", ctx, mock.AnythingOfType("*entity.Basket")).Return(assert.AnError)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CreateOrderInput{})
	require.NoError(t, err, "a committed order survives a failed basket clear")
	assert.NotNil(t, order)
}

func TestOrderService_Checkout_UnknownPaymentType(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Address: completeAddress()}
	basket := &entity.Basket{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.BasketItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: 15, Total: 15},
		},
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.basketRepo.On("FindByUserID", ctx, userID).Return(basket, nil)

	_, err := fx.service.Checkout(ctx, userID, &usecase.CreateOrderInput{PaymentType: "barter"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetMyOrder_OtherUsersOrderIsNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.On("FindByIDAndUser", ctx, orderID, userID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetMyOrder(ctx, userID, orderID)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestOrderService_CancelMyOrder_Pending(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderPending}
	fx.orderRepo.On("FindByIDAndUser", ctx, orderID, userID).Return(order, nil)
	fx.orderRepo.On("Save", ctx, order).Return(nil)

	cancelled, err := fx.service.CancelMyOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestOrderService_CancelMyOrder_ShippedIsBlocked(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderShipped}
	fx.orderRepo.On("FindByIDAndUser", ctx, orderID, userID).Return(order, nil)

	_, err := fx.service.CancelMyOrder(ctx, userID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	fx.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_ValidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, Status: entity.OrderPending}
	status := "confirmed"

	fx.orderRepo.On("FindByID", ctx, orderID).Return(order, nil)

	var fields map[string]any
	fx.orderRepo.On("UpdateFields", ctx, orderID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.Order{ID: orderID, Status: entity.OrderConfirmed}, nil)

	updated, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, updated.Status)
	assert.Equal(t, "confirmed", fields["status"])
	assert.NotContains(t, fields, "delivered_at")
}

func TestOrderService_UpdateOrder_DeliveredStampsTime(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, Status: entity.OrderShipped}
	status := "delivered"

	fx.orderRepo.On("FindByID", ctx, orderID).Return(order, nil)

	var fields map[string]any
	fx.orderRepo.On("UpdateFields", ctx, orderID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.Order{ID: orderID, Status: entity.OrderDelivered}, nil)

	_, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Contains(t, fields, "delivered_at")
}

func TestOrderService_UpdateOrder_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, Status: entity.OrderDelivered}
	status := "pending"

	fx.orderRepo.On("FindByID", ctx, orderID).Return(order, nil)

	_, err := fx.service.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	fx.orderRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
