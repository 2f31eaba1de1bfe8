package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// Size represents a garment size
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// AllSizes lists every selectable size in display order
var AllSizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// IsValid checks if the size is a valid Size
func (s Size) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	}
	return false
}

// String returns the string representation of Size
func (s Size) String() string {
	return string(s)
}

// Product is the snapshot of a catalog product carried into checkout.
// It is read from the product API and never mutated by the checkout flow.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Stock    int             `json:"stock"`
}

// SelectionContext is the product/quantity/size tuple handed from the
// product page to checkout. It is immutable once constructed; checkout
// cannot be reached without one.
type SelectionContext struct {
	product  Product
	quantity int
	size     Size
}

// NewSelectionContext creates a selection context, enforcing the invariants
// the upstream quantity control already guarantees: a positive quantity no
// greater than the product's stock, and a known size. Out-of-range input is
// rejected here rather than forwarded to order submission.
func NewSelectionContext(product Product, quantity int, size Size) (SelectionContext, error) {
	if product.ID == "" {
		return SelectionContext{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if product.Price.IsNegative() {
		return SelectionContext{}, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if product.Stock < 0 {
		return SelectionContext{}, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	if quantity < 1 {
		return SelectionContext{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if quantity > product.Stock {
		return SelectionContext{}, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Quantity %d exceeds available stock %d", quantity, product.Stock))
	}
	if !size.IsValid() {
		return SelectionContext{}, shared.NewDomainError("INVALID_SIZE",
			fmt.Sprintf("Size %q is not a valid size", string(size)))
	}

	return SelectionContext{
		product:  product,
		quantity: quantity,
		size:     size,
	}, nil
}

// Product returns the selected product snapshot
func (sc SelectionContext) Product() Product {
	return sc.product
}

// Quantity returns the selected quantity
func (sc SelectionContext) Quantity() int {
	return sc.quantity
}

// Size returns the selected size
func (sc SelectionContext) Size() Size {
	return sc.size
}

// IsZero reports whether the selection context is absent. Checkout treats an
// absent context as a precondition failure and redirects to the catalog.
func (sc SelectionContext) IsZero() bool {
	return sc.product.ID == ""
}

// Subtotal returns the client-side display subtotal, unit price times
// quantity. The order service's total remains authoritative after submission.
func (sc SelectionContext) Subtotal() decimal.Decimal {
	return sc.product.Price.Mul(decimal.NewFromInt(int64(sc.quantity)))
}
