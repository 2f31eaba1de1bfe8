package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesphere/storefront/internal/domain/catalog"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

func mustNewProduct(t *testing.T, name, price string, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))

		product := mustNewProduct(t, "Classic Cotton T-Shirt", "29.99", 100)
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Classic Cotton T-Shirt", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("29.99")))
		assert.Equal(t, 100, found.Stock)
	})

	t.Run("find by id returns not found for unknown id", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find by category filters products", func(t *testing.T) {
		db := newTestDB(t)
		categories := NewGormCategoryRepository(db)
		repo := NewGormProductRepository(db)

		mens, err := catalog.NewCategory("Men's Wear", "")
		require.NoError(t, err)
		require.NoError(t, categories.Save(ctx, mens))

		womens, err := catalog.NewCategory("Women's Wear", "")
		require.NoError(t, err)
		require.NoError(t, categories.Save(ctx, womens))

		shirt := mustNewProduct(t, "Classic Cotton T-Shirt", "29.99", 100)
		shirt.SetCategory(mens.ID, mens.Name)
		require.NoError(t, repo.Save(ctx, shirt))

		dress := mustNewProduct(t, "Elegant Women's Dress", "89.99", 75)
		dress.SetCategory(womens.ID, womens.Name)
		require.NoError(t, repo.Save(ctx, dress))

		found, err := repo.FindByCategory(ctx, womens.ID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Elegant Women's Dress", found[0].Name)
		assert.Equal(t, "Women's Wear", found[0].CategoryName)
	})

	t.Run("find all returns every product", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))

		require.NoError(t, repo.Save(ctx, mustNewProduct(t, "Stylish Outerwear", "149.99", 40)))
		require.NoError(t, repo.Save(ctx, mustNewProduct(t, "Kids Colorful Collection", "39.99", 60)))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("save persists stock updates", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))

		product := mustNewProduct(t, "Professional Shirts Collection", "59.99", 80)
		require.NoError(t, repo.Save(ctx, product))

		require.NoError(t, product.UpdateStock(42))
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 42, found.Stock)
	})
}
