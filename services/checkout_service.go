package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

// CheckoutState names the step a checkout is in. A failure is always pinned
// to the step it happened in so callers can tell a declined payment from an
// order that was paid for but never recorded.
type CheckoutState int

const (
	StateIdle CheckoutState = iota
	StateRequestingAuthorization
	StateConfirmingPayment
	StateSubmittingOrder
	StateCompleted
	StateFailed
)

func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequestingAuthorization:
		return "requesting_authorization"
	case StateConfirmingPayment:
		return "confirming_payment"
	case StateSubmittingOrder:
		return "submitting_order"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrCheckoutInFlight = errors.New("a checkout is already in progress for this cart")
	ErrEmptyCart        = errors.New("cart is empty")
)

// CheckoutError wraps a step failure. The cart is untouched on every path
// that produces one.
type CheckoutError struct {
	State CheckoutState
	Err   error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout %s: %v", e.State, e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// OrderNotRecordedError means the payment was captured but the order service
// never accepted the order. The payment reference is kept here and in the
// pending-order journal so the order can be replayed.
type OrderNotRecordedError struct {
	PaymentIntentID string
	Err             error
}

func (e *OrderNotRecordedError) Error() string {
	return fmt.Sprintf("payment %s captured but order not recorded: %v", e.PaymentIntentID, e.Err)
}

func (e *OrderNotRecordedError) Unwrap() error {
	return e.Err
}

const orderSubmitAttempts = 3

// CheckoutService drives the payment-and-order sequence:
// Idle -> RequestingAuthorization -> ConfirmingPayment -> SubmittingOrder ->
// Completed, with any step able to fail into Failed. One checkout may be in
// flight per cart owner at a time.
type CheckoutService struct {
	carts    *CartStore
	payments *PaymentService
	orders   *OrderService
	pending  repositories.PendingOrderRepository
	mail     *EmailService
	currency string

	retryDelay time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCheckoutService(carts *CartStore, payments *PaymentService, orders *OrderService, pending repositories.PendingOrderRepository, mail *EmailService, currency string) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		payments:   payments,
		orders:     orders,
		pending:    pending,
		mail:       mail,
		currency:   currency,
		retryDelay: 500 * time.Millisecond,
		inFlight:   map[string]bool{},
	}
}

func (s *CheckoutService) begin(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[owner] {
		return false
	}
	s.inFlight[owner] = true
	return true
}

func (s *CheckoutService) end(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, owner)
}

// Checkout runs the full flow for the owner's cart. The snapshot is taken
// once at submission; later cart mutations do not affect the amount charged
// or the order payload. The cart is cleared only after the order service has
// accepted the order.
func (s *CheckoutService) Checkout(ctx context.Context, owner, token string, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &CheckoutError{State: StateIdle, Err: err}
	}

	if !s.begin(owner) {
		return nil, &CheckoutError{State: StateIdle, Err: ErrCheckoutInFlight}
	}
	defer s.end(owner)

	snapshot := s.carts.Snapshot(owner)
	if len(snapshot.CartItems) == 0 {
		return nil, &CheckoutError{State: StateIdle, Err: ErrEmptyCart}
	}

	amount := utils.MinorUnits(snapshot.Total)

	clientSecret, err := s.payments.CreateIntent(ctx, amount, s.currency, req.BillingDetails)
	if err != nil {
		return nil, &CheckoutError{State: StateRequestingAuthorization, Err: err}
	}

	confirmation, err := s.payments.Confirm(ctx, models.ConfirmPaymentRequest{
		ClientSecret:   clientSecret,
		PaymentMethod:  req.PaymentMethod,
		BillingDetails: req.BillingDetails,
		ReceiptEmail:   req.BillingDetails.Email,
	})
	if err != nil {
		return nil, &CheckoutError{State: StateConfirmingPayment, Err: err}
	}
	if confirmation.Status != models.PaymentStatusSucceeded {
		return nil, &CheckoutError{
			State: StateConfirmingPayment,
			Err:   fmt.Errorf("payment not completed, status %q", confirmation.Status),
		}
	}

	orderReq := buildOrderRequest(snapshot, req.BillingDetails.Address, confirmation.ID)

	if err := s.submitWithRetry(ctx, token, orderReq); err != nil {
		s.journal(owner, orderReq, req.BillingDetails.Email)
		return nil, &OrderNotRecordedError{PaymentIntentID: confirmation.ID, Err: err}
	}

	s.carts.Clear(owner)
	s.sendReceipt(req.BillingDetails.Email, orderReq)

	return &models.CheckoutResult{
		PaymentID:   confirmation.ID,
		TotalAmount: snapshot.Total,
	}, nil
}

// RetryPending replays the caller's own journaled orders whose payment was
// already captured. Entries journaled for other owners are left alone; the
// order service attributes a submission to the bearer token, so replaying
// someone else's order here would record it against the wrong account.
func (s *CheckoutService) RetryPending(ctx context.Context, owner, token string) models.RetryPendingResponse {
	result := models.RetryPendingResponse{}

	for _, pending := range s.pending.List() {
		if pending.Owner != owner {
			continue
		}
		if err := s.orders.Submit(ctx, token, pending.Order); err != nil {
			log.Printf("Pending order %s still failing: %v", pending.PaymentIntentID, err)
			result.Remaining++
			continue
		}

		if err := s.pending.Delete(pending.PaymentIntentID); err != nil {
			log.Printf("Failed to drop recovered pending order %s: %v", pending.PaymentIntentID, err)
		}
		s.sendReceipt(pending.ReceiptEmail, pending.Order)
		result.Recovered++
	}

	return result
}

func (s *CheckoutService) submitWithRetry(ctx context.Context, token string, req models.CreateOrderRequest) error {
	var err error
	for attempt := 1; attempt <= orderSubmitAttempts; attempt++ {
		if err = s.orders.Submit(ctx, token, req); err == nil {
			return nil
		}
		log.Printf("Order submission attempt %d/%d for payment %s failed: %v",
			attempt, orderSubmitAttempts, req.PaymentIntentID, err)
		if attempt < orderSubmitAttempts {
			time.Sleep(s.retryDelay)
		}
	}
	return err
}

func (s *CheckoutService) journal(owner string, req models.CreateOrderRequest, receiptEmail string) {
	pending := models.PendingOrder{
		PaymentIntentID: req.PaymentIntentID,
		Owner:           owner,
		Order:           req,
		ReceiptEmail:    receiptEmail,
		CreatedAt:       time.Now(),
	}
	if err := s.pending.Save(pending); err != nil {
		log.Printf("Failed to journal pending order %s: %v", req.PaymentIntentID, err)
	}
}

func (s *CheckoutService) sendReceipt(toEmail string, order models.CreateOrderRequest) {
	if s.mail == nil || toEmail == "" {
		return
	}
	if err := s.mail.SendReceiptEmail(toEmail, order); err != nil {
		log.Printf("Failed to send receipt for payment %s: %v", order.PaymentIntentID, err)
	}
}

func buildOrderRequest(snapshot models.CartState, address models.BillingAddress, paymentIntentID string) models.CreateOrderRequest {
	items := make([]models.OrderItemRequest, 0, len(snapshot.CartItems))
	for _, item := range snapshot.CartItems {
		items = append(items, models.OrderItemRequest{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	return models.CreateOrderRequest{
		Items:           items,
		TotalAmount:     snapshot.Total,
		BillingAddress:  address,
		PaymentIntentID: paymentIntentID,
	}
}
