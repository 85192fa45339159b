package models

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is submitted to the order service after a payment has
// been confirmed. Items and total come from the cart snapshot taken at
// submission time.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	BillingAddress  BillingAddress     `json:"billingAddress"`
	PaymentIntentID string             `json:"paymentIntentId"`
}

type OrderLookupItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderConfirmation is the authoritative order record, fetched by payment
// reference. This service only ever reads it.
type OrderConfirmation struct {
	PaymentID       string            `json:"paymentId"`
	Status          string            `json:"status"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	ShippingAddress BillingAddress    `json:"shippingAddress"`
	Items           []OrderLookupItem `json:"items"`
}
