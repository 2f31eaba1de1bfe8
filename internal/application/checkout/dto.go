package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stylesphere/storefront/internal/domain/checkout"
)

// StartSessionInput carries the product-page handoff into checkout
type StartSessionInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size" binding:"required,size"`
}

// UpdateFieldInput is a single structural form update
type UpdateFieldInput struct {
	Section string `json:"section" binding:"required"`
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
}

// OrderSummary is the priced recap shown next to the checkout form
type OrderSummary struct {
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Size         checkout.Size   `json:"size"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
}

// SessionResponse describes a checkout session to the client
type SessionResponse struct {
	SessionID string             `json:"session_id"`
	State     checkout.State     `json:"state"`
	CanSubmit bool               `json:"can_submit"`
	Summary   OrderSummary       `json:"summary"`
	Form      checkout.FormState `json:"form"`
	CreatedAt time.Time          `json:"created_at"`
}

func toSessionResponse(session *Session) *SessionResponse {
	selection := session.Selection()
	product := selection.Product()
	subtotal := selection.Subtotal()

	return &SessionResponse{
		SessionID: session.ID.String(),
		State:     session.Submitter.State(),
		CanSubmit: session.Submitter.CanSubmit(),
		Summary: OrderSummary{
			ProductName:  product.Name,
			ProductImage: product.ImageURL,
			Size:         selection.Size(),
			Quantity:     selection.Quantity(),
			UnitPrice:    product.Price,
			Subtotal:     subtotal,
			// Shipping is free; the total is the recomputed subtotal
			ShippingCost: decimal.Zero,
			Total:        subtotal,
		},
		Form:      session.Form(),
		CreatedAt: session.CreatedAt,
	}
}
