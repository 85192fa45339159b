package services

import (
	"context"
	"errors"
	"time"

	"storefront/models"
)

// PaymentService talks to the two payment-side collaborators: the payment
// service that issues client secrets, and the provider endpoint that confirms
// a tokenized payment method against one.
type PaymentService struct {
	api      *apiClient
	provider *apiClient
}

func NewPaymentService(apiBaseURL, providerURL string, timeout time.Duration) *PaymentService {
	return &PaymentService{
		api:      newAPIClient(apiBaseURL, timeout),
		provider: newAPIClient(providerURL, timeout),
	}
}

// CreateIntent requests a payment authorization for the amount in minor
// units and returns the client secret that scopes the payment attempt.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64, currency string, metadata models.BillingDetails) (string, error) {
	req := models.PaymentIntentRequest{
		Amount:   amount,
		Currency: currency,
		Metadata: metadata,
	}

	var resp models.PaymentIntentResponse
	if err := s.api.doJSON(ctx, "POST", "/api/payment/create-payment-intent", "", req, &resp); err != nil {
		return "", err
	}
	if resp.ClientSecret == "" {
		return "", errors.New("payment service returned no client secret")
	}
	return resp.ClientSecret, nil
}

// Confirm hands the client secret and payment-method token to the provider
// and returns its status and payment reference.
func (s *PaymentService) Confirm(ctx context.Context, req models.ConfirmPaymentRequest) (*models.PaymentConfirmation, error) {
	var resp models.PaymentConfirmation
	if err := s.provider.doJSON(ctx, "POST", "", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, errors.New("payment provider returned no payment reference")
	}
	return &resp, nil
}
