package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

type fakeOrderFetcher struct {
	order *Order
	err   error
	calls int
}

func (f *fakeOrderFetcher) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func TestConfirmationViewerView(t *testing.T) {
	t.Run("renders the fetched order", func(t *testing.T) {
		fetcher := &fakeOrderFetcher{order: confirmedOrder()}
		viewer := NewConfirmationViewer(fetcher, nil)

		result := viewer.View(context.Background(), "o1")
		require.NotNil(t, result.Order)
		assert.Equal(t, "o1", result.Order.ID)
		assert.False(t, result.RedirectToCatalog)
	})

	t.Run("redirects to catalog when the order is not found", func(t *testing.T) {
		fetcher := &fakeOrderFetcher{err: shared.ErrNotFound}
		viewer := NewConfirmationViewer(fetcher, nil)

		result := viewer.View(context.Background(), "missing")
		assert.Nil(t, result.Order)
		assert.True(t, result.RedirectToCatalog)
	})

	t.Run("redirects to catalog on transport error", func(t *testing.T) {
		fetcher := &fakeOrderFetcher{err: errors.New("connection reset")}
		viewer := NewConfirmationViewer(fetcher, nil)

		result := viewer.View(context.Background(), "o1")
		assert.True(t, result.RedirectToCatalog)
	})

	t.Run("redirects without fetching when id is empty", func(t *testing.T) {
		fetcher := &fakeOrderFetcher{order: confirmedOrder()}
		viewer := NewConfirmationViewer(fetcher, nil)

		result := viewer.View(context.Background(), "")
		assert.True(t, result.RedirectToCatalog)
		assert.Zero(t, fetcher.calls)
	})

	t.Run("fetching the same id twice yields the same order", func(t *testing.T) {
		fetcher := &fakeOrderFetcher{order: confirmedOrder()}
		viewer := NewConfirmationViewer(fetcher, nil)

		first := viewer.View(context.Background(), "o1")
		second := viewer.View(context.Background(), "o1")
		assert.Equal(t, first.Order, second.Order)
		assert.Equal(t, 2, fetcher.calls)
	})
}
