package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Get order by payment reference
// @Description Fetch the authoritative order record for the confirmation view
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param paymentId path string true "Payment reference"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /orders/payment/{paymentId} [get]
func (ctrl *OrderController) GetOrderByPayment(c *gin.Context) {
	order, err := ctrl.orders.GetByPayment(c.Request.Context(), middleware.Token(c), c.Param("paymentId"))
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch order", "error": err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Data: order})
}
