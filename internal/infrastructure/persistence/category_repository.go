package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylesphere/storefront/internal/domain/catalog"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns all categories ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the number of categories
func (r *GormCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
