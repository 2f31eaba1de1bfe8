package checkout

import (
	"context"

	"go.uber.org/zap"
)

// OrderFetcher looks up a persisted order on the remote service
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (*Order, error)
}

// ViewResult is what the confirmation screen renders: either the order, or
// a redirect back to the catalog when the lookup failed. No retry UI exists
// for lookups.
type ViewResult struct {
	Order             *Order
	RedirectToCatalog bool
}

// ConfirmationViewer fetches and renders a confirmed order. It is read-only
// and idempotent: the service is the source of truth, so fetching the same
// id twice yields the same order.
type ConfirmationViewer struct {
	fetcher OrderFetcher
	logger  *zap.Logger
}

// NewConfirmationViewer creates a confirmation viewer
func NewConfirmationViewer(fetcher OrderFetcher, logger *zap.Logger) *ConfirmationViewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationViewer{fetcher: fetcher, logger: logger}
}

// View issues one fetch for the order. Not-found and transport errors both
// resolve to a catalog redirect rather than an inline error.
func (v *ConfirmationViewer) View(ctx context.Context, orderID string) ViewResult {
	if orderID == "" {
		return ViewResult{RedirectToCatalog: true}
	}

	order, err := v.fetcher.GetOrder(ctx, orderID)
	if err != nil {
		v.logger.Warn("order lookup failed", zap.String("order_id", orderID), zap.Error(err))
		return ViewResult{RedirectToCatalog: true}
	}

	return ViewResult{Order: order}
}
