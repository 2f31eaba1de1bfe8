package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}
