// Package usecase contains hand-written testify mocks for the usecase
// interfaces, used by delivery-layer tests.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
	"ishop/internal/usecase"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) VerifySignUpCode(ctx context.Context, input *usecase.VerifyCodeInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ForgetPassword(ctx context.Context, input *usecase.ForgetPasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) VerifyResetCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.AuthOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBasketUsecase is a testify mock for usecase.BasketUsecase.
type MockBasketUsecase struct {
	mock.Mock
}

func (m *MockBasketUsecase) GetBasket(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	args := m.Called(ctx, userID)
	if basket := args.Get(0); basket != nil {
		return basket.(*entity.Basket), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBasketUsecase) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddBasketItemInput) (*entity.Basket, error) {
	args := m.Called(ctx, userID, input)
	if basket := args.Get(0); basket != nil {
		return basket.(*entity.Basket), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBasketUsecase) UpdateItem(ctx context.Context, userID, productID uuid.UUID, input *usecase.UpdateBasketItemInput) (*entity.Basket, error) {
	args := m.Called(ctx, userID, productID, input)
	if basket := args.Get(0); basket != nil {
		return basket.(*entity.Basket), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBasketUsecase) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Basket, error) {
	args := m.Called(ctx, userID, itemID)
	if basket := args.Get(0); basket != nil {
		return basket.(*entity.Basket), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBasketUsecase) ClearBasket(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

// MockProductUsecase is a testify mock for usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) GetProducts(ctx context.Context, query *repository.ListQuery) ([]*entity.Product, *repository.Pagination, error) {
	args := m.Called(ctx, query)

	var products []*entity.Product
	if got := args.Get(0); got != nil {
		products = got.([]*entity.Product)
	}

	var pagination *repository.Pagination
	if got := args.Get(1); got != nil {
		pagination = got.(*repository.Pagination)
	}

	return products, pagination, args.Error(2)
}

func (m *MockProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockOrderUsecase is a testify mock for usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, userID, input)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) GetMyOrders(ctx context.Context, userID uuid.UUID, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error) {
	args := m.Called(ctx, userID, query)

	var orders []*entity.Order
	if got := args.Get(0); got != nil {
		orders = got.([]*entity.Order)
	}

	var pagination *repository.Pagination
	if got := args.Get(1); got != nil {
		pagination = got.(*repository.Pagination)
	}

	return orders, pagination, args.Error(2)
}

func (m *MockOrderUsecase) GetMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) CancelMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) GetOrders(ctx context.Context, query *repository.ListQuery) ([]*entity.Order, *repository.Pagination, error) {
	args := m.Called(ctx, query)

	var orders []*entity.Order
	if got := args.Get(0); got != nil {
		orders = got.([]*entity.Order)
	}

	var pagination *repository.Pagination
	if got := args.Get(1); got != nil {
		pagination = got.(*repository.Pagination)
	}

	return orders, pagination, args.Error(2)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, id, input)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
