package postgres

import (
	"context"

	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderSchema: items and totals are immutable after creation; only status
// fields and the shipping address are admin-updatable.
var orderSchema = newResourceSchema(
	"order",
	[]string{"email"},
	[]string{
		"status", "payment_status", "payment_type", "delivered_at",
		"address_details", "address_governorate", "address_city", "address_postal_code",
	},
	[]string{"id", "user_id", "total_price", "created_at", "updated_at"},
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	*crudRepository[model.OrderModel, entity.Order]
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		crudRepository: newCRUDRepository(db, orderSchema, toOrderDomain, fromOrderDomain, "Items"),
		db:             db,
	}
}

// FindByIDAndUser retrieves an order scoped to its owner. A miss for any
// reason, including someone else's order id, yields the same error.
func (repo *orderRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id and user")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser retrieves all orders owned by the user.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, q repository.ListQuery) ([]*entity.Order, repository.Pagination, error) {
	q.Normalize()

	base := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("user_id = ?", userID)
	filtered := applyFilters(base, orderSchema, q)

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, repository.Pagination{}, errors.Wrap(err, "failed to count orders")
	}

	tx := applySort(filtered.Preload("Items"), orderSchema, q.Sort)

	var models []*model.OrderModel
	if err := tx.Offset(q.Offset()).Limit(q.Limit).Find(&models).Error; err != nil {
		return nil, repository.Pagination{}, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(models))
	for i, m := range models {
		orders[i] = toOrderDomain(m)
	}

	return orders, repository.Paginate(total, q.Page, q.Limit), nil
}

// Save persists mutations to an existing order (status transitions).
// Items are never rewritten here.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.Items = nil

	if err := repo.db.WithContext(ctx).Save(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Email:         data.Email,
		TotalPrice:    data.TotalPrice,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentType:   entity.PaymentType(data.PaymentType),
		Address: entity.Address{
			Details:     data.Address.Details,
			Governorate: data.Address.Governorate,
			City:        data.Address.City,
			PostalCode:  data.Address.PostalCode,
		},
		DeliveredAt: data.DeliveredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Email:         data.Email,
		TotalPrice:    data.TotalPrice,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		PaymentType:   string(data.PaymentType),
		Address: model.AddressModel{
			Details:     data.Address.Details,
			Governorate: data.Address.Governorate,
			City:        data.Address.City,
			PostalCode:  data.Address.PostalCode,
		},
		DeliveredAt: data.DeliveredAt,
		// Save writes every column, so created_at must round-trip or a
		// zero value would overwrite it.
		CreatedAt: data.CreatedAt,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   data.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}

	return orderM
}
