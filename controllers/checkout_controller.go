package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Checkout
// @Description Authorize payment, confirm it and submit the order from the current cart
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Billing details and payment method token"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	result, err := ctrl.checkout.Checkout(c.Request.Context(), middleware.CartOwner(c), middleware.Token(c), req)
	if err != nil {
		ctrl.renderCheckoutError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order placed successfully", Data: result})
}

// A paid-but-unrecorded order gets its own error shape: the client must keep
// the payment reference instead of treating it like a retryable decline.
func (ctrl *CheckoutController) renderCheckoutError(c *gin.Context, err error) {
	var notRecorded *services.OrderNotRecordedError
	if errors.As(err, &notRecorded) {
		c.JSON(502, gin.H{
			"success":   false,
			"code":      "order_not_recorded",
			"message":   "Your payment was received but we could not record the order. It will be retried automatically; keep this payment reference.",
			"paymentId": notRecorded.PaymentIntentID,
		})
		return
	}

	var checkoutErr *services.CheckoutError
	if errors.As(err, &checkoutErr) {
		switch {
		case errors.Is(checkoutErr.Err, services.ErrCheckoutInFlight):
			c.JSON(409, gin.H{"success": false, "message": checkoutErr.Err.Error()})
		case checkoutErr.State == services.StateIdle:
			c.JSON(400, gin.H{"success": false, "message": checkoutErr.Err.Error()})
		default:
			c.JSON(502, gin.H{
				"success": false,
				"message": "Payment failed. Please try again.",
				"step":    checkoutErr.State.String(),
				"error":   checkoutErr.Err.Error(),
			})
		}
		return
	}

	c.JSON(502, gin.H{"success": false, "message": "Payment failed. Please try again."})
}

// @Summary Retry pending orders
// @Description Replay the caller's journaled orders whose payment was captured but whose submission failed
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/pending/retry [post]
func (ctrl *CheckoutController) RetryPending(c *gin.Context) {
	result := ctrl.checkout.RetryPending(c.Request.Context(), middleware.CartOwner(c), middleware.Token(c))
	c.JSON(200, models.Response{Success: true, Data: result})
}
