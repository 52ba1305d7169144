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

// basketRepository implements repository.BasketRepository using GORM.
type basketRepository struct {
	db *gorm.DB
}

// NewBasketRepository is the constructor for basketRepository.
func NewBasketRepository(db *gorm.DB) repository.BasketRepository {
	return &basketRepository{db: db}
}

// FindByUserID retrieves the user's basket with its line items.
func (repo *basketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Basket, error) {
	var basketM model.BasketModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&basketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBasketNotFound
		}

		return nil, errors.Wrap(err, "failed to find basket by user id")
	}

	return toBasketDomain(&basketM), nil
}

// Create persists a new basket. The unique index on user_id turns the
// create-if-absent race into a constraint violation instead of a
// duplicate basket.
func (repo *basketRepository) Create(ctx context.Context, basket *entity.Basket) error {
	basketM := fromBasketDomain(basket)

	if err := repo.db.WithContext(ctx).Create(basketM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("basket already exists for this user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create basket")
	}

	*basket = *toBasketDomain(basketM)

	return nil
}

// Save persists the basket and its line items as given, replacing the
// stored item set so removals take effect.
func (repo *basketRepository) Save(ctx context.Context, basket *entity.Basket) error {
	basketM := fromBasketDomain(basket)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("basket_id = ?", basketM.ID).Delete(&model.BasketItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to replace basket items")
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(basketM).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save basket")
	}

	*basket = *toBasketDomain(basketM)

	return nil
}

func toBasketDomain(data *model.BasketModel) *entity.Basket {
	if data == nil {
		return nil
	}

	basket := &entity.Basket{
		ID:         data.ID,
		UserID:     data.UserID,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	for _, item := range data.Items {
		basket.Items = append(basket.Items, entity.BasketItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}

	return basket
}

func fromBasketDomain(data *entity.Basket) *model.BasketModel {
	if data == nil {
		return nil
	}

	basketM := &model.BasketModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TotalPrice: data.TotalPrice,
		// Save writes every column, so created_at must round-trip or a
		// zero value would overwrite it.
		CreatedAt: data.CreatedAt,
	}

	for _, item := range data.Items {
		basketM.Items = append(basketM.Items, model.BasketItemModel{
			ID:        item.ID,
			BasketID:  data.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}

	return basketM
}
