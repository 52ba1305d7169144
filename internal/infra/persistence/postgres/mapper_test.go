package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ishop/internal/domain/entity"
)

// Save persists with every column selected, so the model mappers must
// carry created_at through or each save would zero it out.

func TestFromBasketDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	basket := &entity.Basket{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		TotalPrice: 42,
		CreatedAt:  createdAt,
		Items: []entity.BasketItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: 21, Total: 42},
		},
	}

	m := fromBasketDomain(basket)
	require.NotNil(t, m)
	assert.Equal(t, createdAt, m.CreatedAt)

	back := toBasketDomain(m)
	assert.Equal(t, createdAt, back.CreatedAt)
}

func TestFromOrderDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Email:         "user@example.com",
		TotalPrice:    100,
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentUnpaid,
		PaymentType:   entity.PaymentOnDelivery,
		CreatedAt:     createdAt,
	}

	m := fromOrderDomain(order)
	require.NotNil(t, m)
	assert.Equal(t, createdAt, m.CreatedAt)

	back := toOrderDomain(m)
	assert.Equal(t, createdAt, back.CreatedAt)
}

func TestFromUserDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &entity.User{
		ID:            uuid.New(),
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Role:          entity.RoleUser,
		ActiveAccount: true,
		CreatedAt:     createdAt,
	}

	m := fromUserDomain(user)
	require.NotNil(t, m)
	assert.Equal(t, createdAt, m.CreatedAt)

	back := toUserDomain(m)
	assert.Equal(t, createdAt, back.CreatedAt)
}
