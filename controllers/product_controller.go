package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// @Summary List products
// @Description List catalog products, served from cache when fresh
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Data: products})
}

// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch product", "error": err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Data: product})
}

// @Summary List products by category
// @Tags Products
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := ctrl.catalog.ProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}

	c.JSON(200, models.Response{Success: true, Data: products})
}
