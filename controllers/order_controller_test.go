package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/controllers"
	"storefront/models"
	"storefront/services"
)

func orderRouter(apiURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := controllers.NewOrderController(services.NewOrderService(apiURL, 5*time.Second))

	router := gin.New()
	router.GET("/orders/payment/:paymentId",
		func(c *gin.Context) { c.Set("token", "token-1") },
		ctrl.GetOrderByPayment,
	)
	return router
}

func TestGetOrderByPayment(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/payment/pi_test_123", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"), "the lookup must carry the caller's token")

		json.NewEncoder(w).Encode(models.OrderConfirmation{
			PaymentID:   "pi_test_123",
			Status:      "processing",
			TotalAmount: decimal.NewFromInt(50),
			Items: []models.OrderLookupItem{
				{Name: "Widget", Quantity: 2, Price: decimal.NewFromInt(25)},
			},
		})
	}))
	t.Cleanup(api.Close)

	router := orderRouter(api.URL)

	req := httptest.NewRequest("GET", "/orders/payment/pi_test_123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    models.OrderConfirmation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pi_test_123", resp.Data.PaymentID)
	assert.Equal(t, "50", resp.Data.TotalAmount.String())
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "Widget", resp.Data.Items[0].Name)
}

func TestGetOrderByPaymentRemoteFailure(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "order not found"})
	}))
	t.Cleanup(api.Close)

	router := orderRouter(api.URL)

	req := httptest.NewRequest("GET", "/orders/payment/pi_missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "order not found")
}
