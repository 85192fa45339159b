package models

// PaymentIntentRequest asks the payment service to authorize a charge.
// Amount is in minor units (cents).
type PaymentIntentRequest struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Metadata BillingDetails `json:"metadata"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// ConfirmPaymentRequest is sent to the payment provider. PaymentMethod is the
// opaque token from the provider's card collection step.
type ConfirmPaymentRequest struct {
	ClientSecret   string         `json:"clientSecret"`
	PaymentMethod  string         `json:"paymentMethod"`
	BillingDetails BillingDetails `json:"billingDetails"`
	ReceiptEmail   string         `json:"receiptEmail,omitempty"`
}

const PaymentStatusSucceeded = "succeeded"

type PaymentConfirmation struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
