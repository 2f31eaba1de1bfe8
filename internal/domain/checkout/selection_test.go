package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() Product {
	return Product{
		ID:       "p1",
		Name:     "Classic Cotton T-Shirt",
		Price:    decimal.RequireFromString("29.99"),
		ImageURL: "https://example.com/tshirt.jpg",
		Stock:    5,
	}
}

func TestNewSelectionContext(t *testing.T) {
	t.Run("creates selection with valid inputs", func(t *testing.T) {
		sel, err := NewSelectionContext(testProduct(), 2, SizeM)
		require.NoError(t, err)

		assert.Equal(t, "p1", sel.Product().ID)
		assert.Equal(t, 2, sel.Quantity())
		assert.Equal(t, SizeM, sel.Size())
		assert.False(t, sel.IsZero())
	})

	t.Run("fails with empty product ID", func(t *testing.T) {
		p := testProduct()
		p.ID = ""
		_, err := NewSelectionContext(p, 1, SizeM)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product ID")
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewSelectionContext(testProduct(), 0, SizeM)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewSelectionContext(testProduct(), -3, SizeM)
		require.Error(t, err)
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		_, err := NewSelectionContext(testProduct(), 6, SizeM)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds available stock")
	})

	t.Run("allows quantity equal to stock", func(t *testing.T) {
		sel, err := NewSelectionContext(testProduct(), 5, SizeL)
		require.NoError(t, err)
		assert.Equal(t, 5, sel.Quantity())
	})

	t.Run("fails with unknown size", func(t *testing.T) {
		_, err := NewSelectionContext(testProduct(), 1, Size("XXXL"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid size")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		p := testProduct()
		p.Price = decimal.RequireFromString("-1")
		_, err := NewSelectionContext(p, 1, SizeM)
		require.Error(t, err)
	})
}

func TestSelectionContextSubtotal(t *testing.T) {
	sel, err := NewSelectionContext(testProduct(), 2, SizeM)
	require.NoError(t, err)
	assert.True(t, sel.Subtotal().Equal(decimal.RequireFromString("59.98")))
}

func TestSizeIsValid(t *testing.T) {
	for _, size := range AllSizes {
		assert.True(t, size.IsValid(), size.String())
	}
	assert.False(t, Size("").IsValid())
	assert.False(t, Size("medium").IsValid())
}

func TestSelectionContextZeroValue(t *testing.T) {
	var sel SelectionContext
	assert.True(t, sel.IsZero())
}
