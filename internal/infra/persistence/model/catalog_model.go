package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Slug      string    `gorm:"type:varchar(120);not null;index"`
	Image     string    `gorm:"type:varchar(512)"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title              string    `gorm:"type:varchar(100);not null"`
	Slug               string    `gorm:"type:varchar(120);not null;index"`
	Description        string    `gorm:"type:text;not null"`
	Price              float64   `gorm:"not null"`
	Discount           float64   `gorm:"not null;default:0"`
	PriceAfterDiscount *float64
	ImageCover         string   `gorm:"type:varchar(512)"`
	Images             []string `gorm:"serializer:json"`
	SKU                string   `gorm:"type:varchar(64)"`
	Quantity           int      `gorm:"not null;default:0"`
	CategoryID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Category           *CategoryModel `gorm:"foreignKey:CategoryID"`
	Sold               int      `gorm:"not null;default:0"`
	Status             string   `gorm:"type:varchar(20);not null;default:InStock"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
