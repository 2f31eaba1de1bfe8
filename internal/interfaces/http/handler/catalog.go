package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stylesphere/storefront/internal/application/catalog"
)

// CatalogHandler handles category and product browsing requests
type CatalogHandler struct {
	BaseHandler
	catalogService *catalog.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
}

// ListCategories returns all categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// ListProducts returns products, optionally filtered by category
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetProduct returns a single product by ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}
