package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CategoryStatus represents the lifecycle state of a category.
type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "Active"
	CategoryInactive CategoryStatus = "Inactive"
	CategoryArchived CategoryStatus = "Archived"
)

// IsValid checks if the CategoryStatus is a valid value.
func (s CategoryStatus) IsValid() bool {
	switch s {
	case CategoryActive, CategoryInactive, CategoryArchived:
		return true
	default:
		return false
	}
}

// Category is a globally shared catalog grouping, mutated only by admins.
type Category struct {
	ID        uuid.UUID
	Name      string // Unique.
	Slug      string // Derived from Name, never client-settable.
	Image     string
	Status    CategoryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Derive recomputes the derived fields from the current Name. It must be
// called before every save so the slug can never drift from the name.
func (c *Category) Derive() {
	c.Slug = slug.Make(c.Name)
	if c.Status == "" {
		c.Status = CategoryActive
	}
}
