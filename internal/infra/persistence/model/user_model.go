// Package model contains the GORM persistence models mirroring the
// database tables. Domain entities are mapped to and from these types at
// the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is embedded into owning rows with a column prefix.
type AddressModel struct {
	Details     string `gorm:"type:varchar(255)"`
	Governorate string `gorm:"type:varchar(100)"`
	City        string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20)"`
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName          string    `gorm:"type:varchar(100);not null"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Phone             string    `gorm:"type:varchar(30)"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	ProfileImage      string    `gorm:"type:varchar(512)"`
	Address           AddressModel `gorm:"embedded;embeddedPrefix:address_"`
	Role              string    `gorm:"type:varchar(10);not null;default:user"`
	ActiveAccount     bool      `gorm:"not null;default:false"`
	SignUpCodeHash    *string   `gorm:"type:varchar(64)"`
	SignUpCodeExpires *time.Time
	PwResetCodeHash   *string `gorm:"type:varchar(64)"`
	PwResetExpires    *time.Time
	PwResetVerified   *bool
	PasswordChangedAt time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	WishListItems []WishListItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WishListItemModel mirrors the 'wish_list_items' table. Position keeps
// insertion order; the composite primary key forbids duplicates.
type WishListItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishListItemModel) TableName() string {
	return "wish_list_items"
}
