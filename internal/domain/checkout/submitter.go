package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stylesphere/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// State represents the checkout submission state
type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateConfirmed  State = "CONFIRMED"
	StateFailed     State = "FAILED"
)

// IsValid checks if the state is a valid State
func (s State) IsValid() bool {
	switch s {
	case StateIdle, StateValidating, StateSubmitting, StateConfirmed, StateFailed:
		return true
	}
	return false
}

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// CanTransitionTo checks if the state can transition to the target state
func (s State) CanTransitionTo(target State) bool {
	switch s {
	case StateIdle:
		return target == StateValidating
	case StateValidating:
		// Back to Idle on field errors, forward only when validation is clean
		return target == StateIdle || target == StateSubmitting
	case StateSubmitting:
		return target == StateConfirmed || target == StateFailed
	case StateFailed:
		// A failed attempt is retryable; the next submit restores Idle
		return target == StateIdle
	case StateConfirmed:
		return false // Terminal state
	}
	return false
}

// SubmitOutcome classifies the result of a single submit attempt
type SubmitOutcome string

const (
	OutcomeConfirmed        SubmitOutcome = "CONFIRMED"
	OutcomeValidationFailed SubmitOutcome = "VALIDATION_FAILED"
	OutcomeSubmissionFailed SubmitOutcome = "SUBMISSION_FAILED"
)

// SubmitResult is produced fresh for every submit attempt and consumed once.
// Exactly one of Order, FieldErrors, or Message is meaningful, selected by
// Outcome.
type SubmitResult struct {
	Outcome     SubmitOutcome
	Order       *Order
	FieldErrors FieldErrors
	Message     string
}

// FallbackErrorMessage is shown when the order service response carries no
// usable error message
const FallbackErrorMessage = "Failed to place order"

// DefaultSubmitTimeout caps the in-flight wait so a lost response cannot
// leave the machine stuck in Submitting
const DefaultSubmitTimeout = 30 * time.Second

// Submission guard errors
var (
	ErrSubmissionInFlight = shared.NewDomainError("SUBMISSION_IN_FLIGHT", "An order submission is already in progress")
	ErrAlreadyConfirmed   = shared.NewDomainError("ALREADY_CONFIRMED", "Order has already been placed")
)

// OrderCreator performs the order-creation call against the remote service
type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// Submitter owns the Idle/Validating/Submitting/Confirmed/Failed state
// machine for one checkout attempt. Whether a submit is allowed is derived
// strictly from the current state, never from a separately tracked flag, so
// at most one order-creation request can be in flight.
type Submitter struct {
	mu        sync.Mutex
	state     State
	selection SelectionContext
	creator   OrderCreator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewSubmitter creates a submitter for the given selection
func NewSubmitter(selection SelectionContext, creator OrderCreator, timeout time.Duration, logger *zap.Logger) (*Submitter, error) {
	if selection.IsZero() {
		return nil, shared.NewDomainError("MISSING_SELECTION", "Checkout requires a product selection")
	}
	if creator == nil {
		return nil, shared.NewDomainError("MISSING_CREATOR", "Order creator is required")
	}
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		state:     StateIdle,
		selection: selection,
		creator:   creator,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// State returns the current submission state
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanSubmit reports whether a submit attempt may start. This is the single
// source of truth for the submit control's enabled state: Idle, or Failed
// (a retryable prior attempt).
func (s *Submitter) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateIdle || s.state == StateFailed
}

// Submit runs one submission attempt: validate, then create the order.
// While a request is in flight every further Submit returns
// ErrSubmissionInFlight without touching the network. A validation failure
// returns the machine to Idle; a remote rejection, transport error, or
// timeout ends the attempt in Failed, from which the next Submit retries.
func (s *Submitter) Submit(ctx context.Context, form FormState) (SubmitResult, error) {
	s.mu.Lock()
	switch s.state {
	case StateConfirmed:
		s.mu.Unlock()
		return SubmitResult{}, ErrAlreadyConfirmed
	case StateValidating, StateSubmitting:
		s.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInFlight
	case StateFailed:
		s.state = StateIdle
	}

	s.state = StateValidating
	fieldErrs := Validate(form.CustomerInfo, form.ShippingAddress)
	if !fieldErrs.IsValid() {
		s.state = StateIdle
		s.mu.Unlock()
		s.logger.Debug("checkout validation failed", zap.Int("fields", len(fieldErrs)))
		return SubmitResult{Outcome: OutcomeValidationFailed, FieldErrors: fieldErrs}, nil
	}

	s.state = StateSubmitting
	req := NewOrderRequest(s.selection, form)
	s.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	order, err := s.creator.CreateOrder(callCtx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		msg := submissionMessage(err)
		s.logger.Warn("order submission failed",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		return SubmitResult{Outcome: OutcomeSubmissionFailed, Message: msg}, nil
	}

	s.state = StateConfirmed
	s.logger.Info("order confirmed",
		zap.String("order_id", order.ID),
		zap.String("product_id", req.ProductID))
	return SubmitResult{Outcome: OutcomeConfirmed, Order: order}, nil
}

// submissionMessage extracts a user-facing message from a submission error,
// preferring the remote service's own error text
func submissionMessage(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return FallbackErrorMessage
}
