package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BillingAddress struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

type BillingDetails struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Address BillingAddress `json:"address"`
}

// CheckoutRequest is what the client submits from the billing form. The
// payment method is an opaque token produced by the provider's own card
// collection; raw card data never reaches this service.
type CheckoutRequest struct {
	BillingDetails BillingDetails `json:"billingDetails"`
	PaymentMethod  string         `json:"paymentMethod"`
}

func (r CheckoutRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.BillingDetails.Name) == "":
		return errors.New("full name is required")
	case strings.TrimSpace(r.BillingDetails.Email) == "":
		return errors.New("email is required")
	case strings.TrimSpace(r.BillingDetails.Address.Line1) == "":
		return errors.New("street address is required")
	case strings.TrimSpace(r.BillingDetails.Address.City) == "":
		return errors.New("city is required")
	case strings.TrimSpace(r.BillingDetails.Address.PostalCode) == "":
		return errors.New("postal code is required")
	case strings.TrimSpace(r.PaymentMethod) == "":
		return errors.New("payment method is required")
	}
	return nil
}

type CheckoutResult struct {
	PaymentID   string          `json:"paymentId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PendingOrder journals an order that was paid for but not yet accepted by
// the order service, keyed by the payment reference so nothing is lost.
// Owner is the cart owner who paid; a replay must run under their identity,
// never under whoever triggered the drain.
type PendingOrder struct {
	PaymentIntentID string             `json:"paymentIntentId"`
	Owner           string             `json:"owner"`
	Order           CreateOrderRequest `json:"order"`
	ReceiptEmail    string             `json:"receiptEmail,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}
