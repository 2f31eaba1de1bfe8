package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesphere/storefront/internal/domain/checkout"
)

// ProductResolver resolves the product snapshot a checkout starts from
type ProductResolver interface {
	GetProduct(ctx context.Context, productID string) (*checkout.Product, error)
}

// CheckoutService orchestrates checkout sessions: it resolves the selected
// product, applies form updates, drives the submitter, and renders the
// confirmation screen
type CheckoutService struct {
	store         *SessionStore
	products      ProductResolver
	orders        checkout.OrderCreator
	viewer        *checkout.ConfirmationViewer
	submitTimeout time.Duration
	logger        *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	products ProductResolver,
	orders checkout.OrderCreator,
	fetcher checkout.OrderFetcher,
	submitTimeout time.Duration,
	logger *zap.Logger,
) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		store:         NewSessionStore(),
		products:      products,
		orders:        orders,
		viewer:        checkout.NewConfirmationViewer(fetcher, logger),
		submitTimeout: submitTimeout,
		logger:        logger,
	}
}

// StartSession resolves the selected product and opens a checkout session.
// The price and stock used from here on are the snapshot taken now
func (s *CheckoutService) StartSession(ctx context.Context, input StartSessionInput) (*SessionResponse, error) {
	product, err := s.products.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	selection, err := checkout.NewSelectionContext(*product, input.Quantity, checkout.Size(input.Size))
	if err != nil {
		return nil, err
	}

	submitter, err := checkout.NewSubmitter(selection, s.orders, s.submitTimeout, s.logger)
	if err != nil {
		return nil, err
	}

	session := NewSession(selection, submitter)
	s.store.Put(session)

	s.logger.Info("checkout session started",
		zap.String("session_id", session.ID.String()),
		zap.String("product_id", product.ID),
		zap.Int("quantity", selection.Quantity()),
	)

	return toSessionResponse(session), nil
}

// GetSession returns the current view of a session
func (s *CheckoutService) GetSession(sessionID uuid.UUID) (*SessionResponse, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// UpdateField applies one structural form update to a session
func (s *CheckoutService) UpdateField(sessionID uuid.UUID, input UpdateFieldInput) (*SessionResponse, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.UpdateForm(input.Section, input.Field, input.Value); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

// Submit runs one submission attempt for the session
func (s *CheckoutService) Submit(ctx context.Context, sessionID uuid.UUID) (checkout.SubmitResult, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return checkout.SubmitResult{}, err
	}

	result, err := session.Submitter.Submit(ctx, session.Form())
	if err != nil {
		return checkout.SubmitResult{}, err
	}

	if result.Outcome == checkout.OutcomeConfirmed {
		// The session served its purpose; the order lives on the remote service
		s.store.Delete(sessionID)
	}

	return result, nil
}

// ViewConfirmation fetches the order for the confirmation screen
func (s *CheckoutService) ViewConfirmation(ctx context.Context, orderID string) checkout.ViewResult {
	return s.viewer.View(ctx, orderID)
}
