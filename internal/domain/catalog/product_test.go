package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Classic Cotton T-Shirt", "Premium quality cotton t-shirt", decimal.RequireFromString("29.99"), 100)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Classic Cotton T-Shirt", product.Name)
		assert.Equal(t, 100, product.Stock)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("29.99")))
		assert.NotEmpty(t, product.ID)
		assert.Nil(t, product.CategoryID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "desc", decimal.Zero, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Shirt", "", decimal.RequireFromString("-1"), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("Shirt", "", decimal.Zero, -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stock cannot be negative")
	})
}

func TestProductSetCategory(t *testing.T) {
	product, err := NewProduct("Shirt", "", decimal.RequireFromString("59.99"), 80)
	require.NoError(t, err)

	categoryID := uuid.New()
	product.SetCategory(categoryID, "Men's Wear")

	require.NotNil(t, product.CategoryID)
	assert.Equal(t, categoryID, *product.CategoryID)
	assert.Equal(t, "Men's Wear", product.CategoryName)
}

func TestProductUpdateStock(t *testing.T) {
	product, err := NewProduct("Shirt", "", decimal.RequireFromString("59.99"), 1)
	require.NoError(t, err)
	assert.True(t, product.InStock())

	require.NoError(t, product.UpdateStock(0))
	assert.False(t, product.InStock())

	assert.Error(t, product.UpdateStock(-5))
}

func TestProductUpdatePrice(t *testing.T) {
	product, err := NewProduct("Shirt", "", decimal.RequireFromString("59.99"), 1)
	require.NoError(t, err)

	require.NoError(t, product.UpdatePrice(decimal.RequireFromString("49.99")))
	assert.True(t, product.Price.Equal(decimal.RequireFromString("49.99")))

	assert.Error(t, product.UpdatePrice(decimal.RequireFromString("-0.01")))
}

func TestNewCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		category, err := NewCategory("Women's Wear", "https://example.com/w.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Women's Wear", category.Name)
		assert.NotEmpty(t, category.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("", "")
		require.Error(t, err)
	})
}
