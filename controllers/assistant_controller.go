package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type AssistantController struct {
	assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{assistant: assistant}
}

// @Summary Product suggestion
// @Description Short AI-generated marketing blurb for a product name
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.SuggestionRequest true "Product name"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /assistant/suggestion [post]
func (ctrl *AssistantController) Suggest(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "productName is required"})
		return
	}

	suggestion := ctrl.assistant.Suggest(c.Request.Context(), req.ProductName)
	c.JSON(200, models.Response{Success: true, Data: models.SuggestionResponse{Suggestion: suggestion}})
}
