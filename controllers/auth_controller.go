package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/config"
)

// AuthController forwards authentication calls to the remote API unchanged.
// Tokens are issued and refreshed there; this service only relays them.
type AuthController struct {
	client *http.Client
}

func NewAuthController() *AuthController {
	return &AuthController{
		client: &http.Client{Timeout: config.AppConfig.HTTPTimeout},
	}
}

// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	ctrl.forward(c, "POST", "/api/auth/login")
}

// @Summary Register
// @Tags Authentication
// @Accept json
// @Produce json
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	ctrl.forward(c, "POST", "/api/auth/register")
}

// @Summary Update user
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Router /auth/user/{id} [put]
func (ctrl *AuthController) UpdateUser(c *gin.Context) {
	ctrl.forward(c, "PUT", "/api/auth/updateUser/"+c.Param("id"))
}

// @Summary Delete user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Router /auth/user/{id} [delete]
func (ctrl *AuthController) DeleteUser(c *gin.Context) {
	ctrl.forward(c, "DELETE", "/api/auth/deleteUser/"+c.Param("id"))
}

func (ctrl *AuthController) forward(c *gin.Context, method, path string) {
	req, err := http.NewRequestWithContext(c.Request.Context(), method, config.AppConfig.APIBaseURL+path, c.Request.Body)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to reach auth service"})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := ctrl.client.Do(req)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Auth service unavailable", "error": err.Error()})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to read auth response"})
		return
	}

	c.Data(resp.StatusCode, "application/json", body)
}
