package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type CartController struct {
	carts *services.CartStore
}

func NewCartController(carts *services.CartStore) *CartController {
	return &CartController{carts: carts}
}

// @Summary Get cart
// @Description Get the current cart with line items and total
// @Tags Cart
// @Produce json
// @Param X-Session-Id header string false "Guest session id"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	state := ctrl.carts.Snapshot(middleware.CartOwner(c))
	c.JSON(200, models.Response{Success: true, Data: state})
}

// @Summary Add item to cart
// @Description Add a product to the cart, merging with an existing line item
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddItemRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Quantity < 1 {
		c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
		return
	}

	product, err := req.Product.Normalize()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	state := ctrl.carts.AddItem(middleware.CartOwner(c), product, req.Quantity)
	c.JSON(200, models.Response{Success: true, Message: "Item added to cart", Data: state})
}

// @Summary Remove item from cart
// @Description Remove a line item from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	state := ctrl.carts.RemoveItem(middleware.CartOwner(c), c.Param("id"))
	c.JSON(200, models.Response{Success: true, Message: "Item removed from cart", Data: state})
}

// @Summary Increment item quantity
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/increment [post]
func (ctrl *CartController) IncrementItem(c *gin.Context) {
	state := ctrl.carts.IncrementQuantity(middleware.CartOwner(c), c.Param("id"))
	c.JSON(200, models.Response{Success: true, Data: state})
}

// @Summary Decrement item quantity
// @Description Lower the quantity by one, floored at 1
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/decrement [post]
func (ctrl *CartController) DecrementItem(c *gin.Context) {
	state := ctrl.carts.DecrementQuantity(middleware.CartOwner(c), c.Param("id"))
	c.JSON(200, models.Response{Success: true, Data: state})
}

// @Summary Clear cart
// @Description Empty the cart and drop its persisted record
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.carts.Clear(middleware.CartOwner(c))
	c.JSON(200, models.Response{Success: true, Message: "Cart cleared", Data: models.EmptyCart()})
}
