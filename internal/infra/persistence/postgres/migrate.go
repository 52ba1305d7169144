package postgres

import (
	"ishop/internal/errors"
	"ishop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persistence model.
// Invoked by cmd/migrate, never at service startup.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.WishListItemModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.BasketModel{},
		&model.BasketItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	)

	return errors.Wrap(err, "auto migrate failed")
}
