package services

import (
	"context"
	"time"

	"storefront/models"
)

// OrderService wraps the remote order API: submitting the order record after
// a confirmed payment, and reading the authoritative record back by payment
// reference for the confirmation view.
type OrderService struct {
	api *apiClient
}

func NewOrderService(apiBaseURL string, timeout time.Duration) *OrderService {
	return &OrderService{api: newAPIClient(apiBaseURL, timeout)}
}

func (s *OrderService) Submit(ctx context.Context, token string, req models.CreateOrderRequest) error {
	return s.api.doJSON(ctx, "POST", "/api/orders/after-payment", token, req, nil)
}

func (s *OrderService) GetByPayment(ctx context.Context, token, paymentID string) (*models.OrderConfirmation, error) {
	var resp models.OrderConfirmation
	if err := s.api.doJSON(ctx, "GET", "/api/orders/payment/"+paymentID, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
