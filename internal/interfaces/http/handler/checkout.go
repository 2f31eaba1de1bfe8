package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcheckout "github.com/stylesphere/storefront/internal/application/checkout"
	"github.com/stylesphere/storefront/internal/domain/checkout"
	"github.com/stylesphere/storefront/internal/interfaces/http/dto"
	"github.com/stylesphere/storefront/internal/interfaces/http/middleware"
)

// CatalogPath is where clients are sent when a confirmation cannot be shown
const CatalogPath = "/products"

// SubmitResponse is returned when an order submission is confirmed
type SubmitResponse struct {
	Order           *checkout.Order `json:"order"`
	ConfirmationURL string          `json:"confirmation_url"`
}

// CheckoutHandler handles checkout session and order confirmation requests
type CheckoutHandler struct {
	BaseHandler
	checkoutService *appcheckout.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *appcheckout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/checkout/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PATCH("/:id/form", h.UpdateField)
		sessions.POST("/:id/submit", h.Submit)
	}
	rg.GET("/orders/:id/confirmation", h.ViewConfirmation)
}

// StartSession opens a checkout session for a product selection
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var input appcheckout.StartSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	session, err := h.checkoutService.StartSession(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}

// GetSession returns the current state of a checkout session
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.checkoutService.GetSession(sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}

// UpdateField applies a single form field change to a session
func (h *CheckoutHandler) UpdateField(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	var input appcheckout.UpdateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	session, err := h.checkoutService.UpdateField(sessionID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}

// Submit validates the session's form and places the order
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	result, err := h.checkoutService.Submit(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch result.Outcome {
	case checkout.OutcomeValidationFailed:
		requestID := getRequestID(c)
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(
			"Please correct the highlighted fields",
			requestID,
			result.FieldErrors,
		))
	case checkout.OutcomeSubmissionFailed:
		h.BadGateway(c, dto.ErrCodeOrderRejected, result.Message)
	default:
		h.Success(c, SubmitResponse{
			Order:           result.Order,
			ConfirmationURL: "/orders/" + result.Order.ID + "/confirmation",
		})
	}
}

// ViewConfirmation renders a placed order, or points the client back to
// the catalog when the order cannot be shown
func (h *CheckoutHandler) ViewConfirmation(c *gin.Context) {
	result := h.checkoutService.ViewConfirmation(c.Request.Context(), c.Param("id"))
	if result.RedirectToCatalog {
		requestID := getRequestID(c)
		c.JSON(http.StatusNotFound, dto.Response{
			Success: false,
			Data:    gin.H{"redirect_to": CatalogPath},
			Error: &dto.ErrorInfo{
				Code:      dto.ErrCodeNotFound,
				Message:   "Order not found",
				RequestID: requestID,
			},
		})
		return
	}

	h.Success(c, result.Order)
}
