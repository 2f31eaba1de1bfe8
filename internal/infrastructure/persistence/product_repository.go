package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylesphere/storefront/internal/domain/catalog"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns all products ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory returns all products belonging to the given category
func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
