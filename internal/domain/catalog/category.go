package catalog

import (
	"time"

	"github.com/stylesphere/storefront/internal/domain/shared"
)

// Category represents a browsable product category
type Category struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	ImageURL string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, imageURL string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ImageURL:   imageURL,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}
