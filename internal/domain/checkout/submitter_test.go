package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylesphere/storefront/internal/domain/shared"
)

// fakeOrderCreator counts calls and can be made to block or fail
type fakeOrderCreator struct {
	mu      sync.Mutex
	calls   int
	order   *Order
	err     error
	release chan struct{} // when non-nil, CreateOrder waits before returning
}

func (f *fakeOrderCreator) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func (f *fakeOrderCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func confirmedOrder() *Order {
	return &Order{
		ID:            "o1",
		ProductName:   "Classic Cotton T-Shirt",
		Size:          SizeM,
		Quantity:      2,
		UnitPrice:     decimal.RequireFromString("29.99"),
		TotalPrice:    decimal.RequireFromString("59.98"),
		OrderStatus:   "confirmed",
		PaymentStatus: "pending",
		PaymentMethod: "cash_on_delivery",
	}
}

func newTestSubmitter(t *testing.T, creator OrderCreator) *Submitter {
	t.Helper()
	sel, err := NewSelectionContext(testProduct(), 2, SizeM)
	require.NoError(t, err)
	sub, err := NewSubmitter(sel, creator, time.Second, nil)
	require.NoError(t, err)
	return sub
}

func validForm() FormState {
	return FormState{
		CustomerInfo:    validCustomerInfo(),
		ShippingAddress: validShippingAddress(),
	}
}

func TestStateCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    State
		to      State
		allowed bool
	}{
		{StateIdle, StateValidating, true},
		{StateIdle, StateSubmitting, false},
		{StateValidating, StateIdle, true},
		{StateValidating, StateSubmitting, true},
		{StateValidating, StateConfirmed, false},
		{StateSubmitting, StateConfirmed, true},
		{StateSubmitting, StateFailed, true},
		{StateSubmitting, StateIdle, false},
		{StateFailed, StateIdle, true},
		{StateFailed, StateSubmitting, false},
		{StateConfirmed, StateIdle, false},
		{StateConfirmed, StateFailed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStateIsValid(t *testing.T) {
	for _, s := range []State{StateIdle, StateValidating, StateSubmitting, StateConfirmed, StateFailed} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, State("PENDING").IsValid())
}

func TestNewSubmitter(t *testing.T) {
	t.Run("requires a selection", func(t *testing.T) {
		_, err := NewSubmitter(SelectionContext{}, &fakeOrderCreator{}, time.Second, nil)
		require.Error(t, err)
	})

	t.Run("requires an order creator", func(t *testing.T) {
		sel, err := NewSelectionContext(testProduct(), 1, SizeM)
		require.NoError(t, err)
		_, err = NewSubmitter(sel, nil, time.Second, nil)
		require.Error(t, err)
	})

	t.Run("starts in Idle", func(t *testing.T) {
		sub := newTestSubmitter(t, &fakeOrderCreator{order: confirmedOrder()})
		assert.Equal(t, StateIdle, sub.State())
		assert.True(t, sub.CanSubmit())
	})
}

func TestSubmitValidationFailure(t *testing.T) {
	creator := &fakeOrderCreator{order: confirmedOrder()}
	sub := newTestSubmitter(t, creator)

	result, err := sub.Submit(context.Background(), NewFormState())
	require.NoError(t, err)

	assert.Equal(t, OutcomeValidationFailed, result.Outcome)
	assert.NotEmpty(t, result.FieldErrors)
	assert.Nil(t, result.Order)

	// No network call was made and the machine is back in Idle
	assert.Equal(t, 0, creator.callCount())
	assert.Equal(t, StateIdle, sub.State())
	assert.True(t, sub.CanSubmit())
}

func TestSubmitRepeatableAfterValidationFailure(t *testing.T) {
	creator := &fakeOrderCreator{order: confirmedOrder()}
	sub := newTestSubmitter(t, creator)

	// The user may fix a field and resubmit indefinitely
	for i := 0; i < 3; i++ {
		result, err := sub.Submit(context.Background(), NewFormState())
		require.NoError(t, err)
		assert.Equal(t, OutcomeValidationFailed, result.Outcome)
	}

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 1, creator.callCount())
}

func TestSubmitSuccess(t *testing.T) {
	creator := &fakeOrderCreator{order: confirmedOrder()}
	sub := newTestSubmitter(t, creator)

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, OutcomeConfirmed, result.Outcome)
	require.NotNil(t, result.Order)
	assert.Equal(t, "o1", result.Order.ID)
	assert.True(t, result.Order.TotalPrice.Equal(decimal.RequireFromString("59.98")))
	assert.Equal(t, StateConfirmed, sub.State())
	assert.False(t, sub.CanSubmit())
}

func TestSubmitAfterConfirmedIsRejected(t *testing.T) {
	creator := &fakeOrderCreator{order: confirmedOrder()}
	sub := newTestSubmitter(t, creator)

	_, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)

	_, err = sub.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Equal(t, 1, creator.callCount())
}

func TestSubmitRemoteRejection(t *testing.T) {
	creator := &fakeOrderCreator{err: shared.NewDomainError("OUT_OF_STOCK", "Out of stock")}
	sub := newTestSubmitter(t, creator)

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSubmissionFailed, result.Outcome)
	assert.Equal(t, "Out of stock", result.Message)
	assert.Equal(t, StateFailed, sub.State())
	assert.True(t, sub.CanSubmit())
}

func TestSubmitTransportErrorUsesFallbackMessage(t *testing.T) {
	creator := &fakeOrderCreator{err: errors.New("connection refused")}
	sub := newTestSubmitter(t, creator)

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSubmissionFailed, result.Outcome)
	assert.Equal(t, FallbackErrorMessage, result.Message)
}

func TestSubmitRetryAfterFailure(t *testing.T) {
	creator := &fakeOrderCreator{err: shared.NewDomainError("OUT_OF_STOCK", "Out of stock")}
	sub := newTestSubmitter(t, creator)

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.Equal(t, OutcomeSubmissionFailed, result.Outcome)
	require.Equal(t, StateFailed, sub.State())

	// The same submit action retries: Failed restores Idle and runs again
	creator.err = nil
	creator.order = confirmedOrder()
	result, err = sub.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 2, creator.callCount())
}

func TestSubmitAtMostOneInFlight(t *testing.T) {
	release := make(chan struct{})
	creator := &fakeOrderCreator{order: confirmedOrder(), release: release}
	sub := newTestSubmitter(t, creator)

	done := make(chan SubmitResult, 1)
	go func() {
		result, err := sub.Submit(context.Background(), validForm())
		require.NoError(t, err)
		done <- result
	}()

	// Wait for the first submit to enter Submitting
	require.Eventually(t, func() bool {
		return sub.State() == StateSubmitting
	}, time.Second, time.Millisecond)
	assert.False(t, sub.CanSubmit())

	// A second rapid submit must not reach the network
	_, err := sub.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	result := <-done
	assert.Equal(t, OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 1, creator.callCount())
}

func TestSubmitTimeoutFails(t *testing.T) {
	// Never released, so the call can only end via the submit timeout
	creator := &fakeOrderCreator{order: confirmedOrder(), release: make(chan struct{})}
	sel, err := NewSelectionContext(testProduct(), 1, SizeS)
	require.NoError(t, err)
	sub, err := NewSubmitter(sel, creator, 20*time.Millisecond, nil)
	require.NoError(t, err)

	result, err := sub.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSubmissionFailed, result.Outcome)
	assert.Equal(t, FallbackErrorMessage, result.Message)
	assert.Equal(t, StateFailed, sub.State())
	assert.True(t, sub.CanSubmit())
}
