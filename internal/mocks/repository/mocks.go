// Package repository provides hand-written testify mocks for the
// repository interfaces used in service tests.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
)

// MockCRUDRepository mocks the generic CRUD contract. Concrete repository
// mocks embed it so the shared methods are declared once.
type MockCRUDRepository[E any] struct {
	mock.Mock
}

func (m *MockCRUDRepository[E]) Insert(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)

	return args.Error(0)
}

func (m *MockCRUDRepository[E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*E); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCRUDRepository[E]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*E, error) {
	args := m.Called(ctx, id, fields)
	if v, ok := args.Get(0).(*E); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCRUDRepository[E]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCRUDRepository[E]) List(ctx context.Context, q repository.ListQuery) ([]*E, repository.Pagination, error) {
	args := m.Called(ctx, q)

	var items []*E
	if v, ok := args.Get(0).([]*E); ok {
		items = v
	}
	var p repository.Pagination
	if v, ok := args.Get(1).(repository.Pagination); ok {
		p = v
	}

	return items, p, args.Error(2)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	MockCRUDRepository[entity.User]
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).(*entity.User); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	MockCRUDRepository[entity.Category]
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	MockCRUDRepository[entity.Product]
}

func (m *MockProductRepository) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]*entity.Product); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBasketRepository mocks repository.BasketRepository.
type MockBasketRepository struct {
	mock.Mock
}

func (m *MockBasketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*entity.Basket); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBasketRepository) Create(ctx context.Context, basket *entity.Basket) error {
	args := m.Called(ctx, basket)

	return args.Error(0)
}

func (m *MockBasketRepository) Save(ctx context.Context, basket *entity.Basket) error {
	args := m.Called(ctx, basket)

	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	MockCRUDRepository[entity.Order]
}

func (m *MockOrderRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id, userID)
	if v, ok := args.Get(0).(*entity.Order); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, q repository.ListQuery) ([]*entity.Order, repository.Pagination, error) {
	args := m.Called(ctx, userID, q)

	var orders []*entity.Order
	if v, ok := args.Get(0).([]*entity.Order); ok {
		orders = v
	}
	var p repository.Pagination
	if v, ok := args.Get(1).(repository.Pagination); ok {
		p = v
	}

	return orders, p, args.Error(2)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}
