package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/stylesphere/storefront/internal/domain/catalog"
)

// CatalogService handles catalog browsing operations
type CatalogService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// ListCategories returns all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// ListProducts returns all products, optionally filtered by category
func (s *CatalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]ProductResponse, error) {
	var (
		products []catalog.Product
		err      error
	)

	if categoryID != nil {
		products, err = s.productRepo.FindByCategory(ctx, *categoryID)
	} else {
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ToProductResponse(&products[i]))
	}
	return responses, nil
}

// GetProduct returns a single product by id
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}
