package model

import (
	"time"

	"github.com/google/uuid"
)

// BasketModel mirrors the 'baskets' table. The unique index on UserID is
// a required invariant: it prevents the create-if-absent race from ever
// producing two baskets for one user.
type BasketModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TotalPrice float64   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []BasketItemModel `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BasketModel) TableName() string {
	return "baskets"
}

// BasketItemModel mirrors the 'basket_items' table.
type BasketItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BasketID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"not null"`
	Total     float64   `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BasketItemModel) TableName() string {
	return "basket_items"
}
