package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

func setupCheckoutControllerTest(t *testing.T) (*gin.Engine, service.CartService) {
	t.Helper()

	productRepo := seedProductRepo(t, catalogTestProducts())
	cartService := service.NewCartService(productRepo)
	checkoutService := service.NewCheckoutService(cartService)

	cartController := NewCartController(cartService)
	checkoutController := NewCheckoutController(checkoutService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cart", cartController.GetCart)
	router.POST("/cart/items", cartController.AddItem)
	router.POST("/checkout", checkoutController.PlaceOrder)

	return router, cartService
}

func validBillingJSON() []byte {
	data, _ := json.Marshal(model.BillingDetails{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Phone:     "+1 555 0100",
		Country:   "US",
		City:      "Portland",
		Zip:       "97201",
	})
	return data
}

func TestCheckoutController_PlaceOrder(t *testing.T) {
	router, cartService := setupCheckoutControllerTest(t)

	_, err := cartService.Add(context.Background(), "guest_abc", "prod_1")
	require.NoError(t, err)
	_, err = cartService.Add(context.Background(), "guest_abc", "prod_2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout?currency=EUR", bytes.NewBuffer(validBillingJSON()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.GuestIDHeader, "abc")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order service.OrderConfirmation `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Order.OrderID)
	assert.Equal(t, "dana@example.com", resp.Order.Email)
	assert.Equal(t, "EUR", resp.Order.Currency)
	assert.Len(t, resp.Order.Items, 2)
	assert.InDelta(t, 36.8, resp.Order.Total, 0.001)

	// the cart is emptied once the order is placed
	assert.Empty(t, cartService.Items(context.Background(), "guest_abc"))
}

func TestCheckoutController_PlaceOrder_FieldErrors(t *testing.T) {
	router, cartService := setupCheckoutControllerTest(t)

	_, err := cartService.Add(context.Background(), "guest_abc", "prod_1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout",
		bytes.NewBufferString(`{"firstName":"Dana","email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.GuestIDHeader, "abc")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_INVALID_INPUT", resp.Error)
	assert.Equal(t, "Required", resp.Fields["lastName"])
	assert.Equal(t, "Valid email required", resp.Fields["email"])
	assert.NotContains(t, resp.Fields, "firstName")
	assert.NotContains(t, resp.Fields, "address")

	// a failed checkout keeps the cart intact
	assert.Len(t, cartService.Items(context.Background(), "guest_abc"), 1)
}

func TestCheckoutController_PlaceOrder_EmptyCart(t *testing.T) {
	router, _ := setupCheckoutControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(validBillingJSON()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.GuestIDHeader, "abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CART_EMPTY")
}

func TestCheckoutController_PlaceOrder_NoOwner(t *testing.T) {
	router, _ := setupCheckoutControllerTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(validBillingJSON()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REQUIRED")
}

func TestCartController_AddAndGet(t *testing.T) {
	router, _ := setupCheckoutControllerTest(t)

	body, _ := json.Marshal(AddToCartRequest{ProductID: "prod_1"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.GuestIDHeader, "abc")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(middleware.GuestIDHeader, "abc")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []model.CartItem `json:"items"`
		Total float64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "prod_1", resp.Items[0].ID)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.InDelta(t, 30.0, resp.Total, 0.001)
}
