package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/models"
)

func validateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware requires a valid bearer token issued by the remote API
// (shared HS256 secret) and puts its claims on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		claims, err := validateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("token", token)
		setClaimOwner(c, claims)
		c.Next()
	}
}

// CartSessionMiddleware resolves the cart owner key. Authenticated requests
// are keyed by the token's user id; guests are keyed by an X-Session-Id
// header, minted here when absent and echoed back so the client can keep it.
func CartSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := validateToken(token); err == nil {
				c.Set("token", token)
				setClaimOwner(c, claims)
				c.Next()
				return
			}
		}

		sessionID := strings.TrimSpace(c.GetHeader("X-Session-Id"))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header("X-Session-Id", sessionID)
		c.Set("cart_owner", "session:"+sessionID)
		c.Next()
	}
}

func setClaimOwner(c *gin.Context, claims jwt.MapClaims) {
	if userID, ok := claims["user_id"]; ok {
		c.Set("user_id", userID)
		c.Set("cart_owner", fmt.Sprintf("user:%v", userID))
	}
	if email, ok := claims["email"].(string); ok {
		c.Set("user_email", email)
	}
}

// CartOwner reads the owner key set by the session or auth middleware.
func CartOwner(c *gin.Context) string {
	return c.GetString("cart_owner")
}

// Token returns the raw bearer token for pass-through calls to the remote API.
func Token(c *gin.Context) string {
	return c.GetString("token")
}
