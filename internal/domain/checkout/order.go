package checkout

import (
	"github.com/shopspring/decimal"
)

// OrderRequest is the payload sent to the remote order service. It is
// constructed at submit time and never stored before submission.
type OrderRequest struct {
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	Size            Size            `json:"size"`
	CustomerInfo    CustomerInfo    `json:"customer_info"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// NewOrderRequest builds the order payload from the selection and the form
func NewOrderRequest(sel SelectionContext, form FormState) OrderRequest {
	return OrderRequest{
		ProductID:       sel.Product().ID,
		Quantity:        sel.Quantity(),
		Size:            sel.Size(),
		CustomerInfo:    form.CustomerInfo,
		ShippingAddress: form.ShippingAddress,
	}
}

// Order is the authoritative record created by the remote order service.
// The client treats it as read-only: the id is generated server-side and
// total_price is displayed as returned, never recomputed from client state.
type Order struct {
	ID                string          `json:"id"`
	ProductName       string          `json:"product_name"`
	ProductImage      string          `json:"product_image"`
	Size              Size            `json:"size"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	CustomerInfo      CustomerInfo    `json:"customer_info"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	OrderStatus       string          `json:"order_status"`
	PaymentStatus     string          `json:"payment_status"`
	PaymentMethod     string          `json:"payment_method"`
	EstimatedDelivery string          `json:"estimated_delivery"`
}
