package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stylesphere/storefront/internal/domain/catalog"
)

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ImageURL     string          `json:"image_url"`
	Stock        int             `json:"stock"`
	InStock      bool            `json:"in_stock"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToCategoryResponse converts a category aggregate to its response DTO
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
	}
}

// ToProductResponse converts a product aggregate to its response DTO
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		ImageURL:     p.ImageURL,
		Stock:        p.Stock,
		InStock:      p.InStock(),
		CreatedAt:    p.CreatedAt,
	}
}
