package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// Product represents a sellable item in the storefront catalog.
// Stock is only ever read by the checkout flow; this storefront never
// decrements it.
type Product struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryName string          `gorm:"type:varchar(100)"`
	ImageURL     string          `gorm:"type:text"`
	Stock        int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name, description string, price decimal.Decimal, stock int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// SetCategory assigns the product to a category, denormalizing the name for
// listing responses
func (p *Product) SetCategory(categoryID uuid.UUID, categoryName string) {
	p.CategoryID = &categoryID
	p.CategoryName = categoryName
	p.UpdatedAt = time.Now()
}

// SetImageURL sets the product image
func (p *Product) SetImageURL(imageURL string) {
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
}

// UpdatePrice changes the selling price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateStock replaces the stock level
func (p *Product) UpdateStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// InStock reports whether any units remain
func (p *Product) InStock() bool {
	return p.Stock > 0
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
