package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecart/vibe-commerce-api/internal/cart"
	"github.com/vibecart/vibe-commerce-api/internal/checkout"
	"github.com/vibecart/vibe-commerce-api/internal/config"
	"github.com/vibecart/vibe-commerce-api/internal/handlers"
	"github.com/vibecart/vibe-commerce-api/internal/routes"
	"github.com/vibecart/vibe-commerce-api/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := store.NewMemoryProducts()
	_, err := store.Seed(context.Background(), products)
	require.NoError(t, err)

	app := &handlers.Handlers{
		Products: products,
		Cart:     cart.NewService(products, store.NewMemoryCarts()),
		Checkout: checkout.NewProcessor(),
		Logger:   zerolog.Nop(),
	}
	return routes.SetupRouter(app, config.Config{Env: "production", AllowedOrigin: "http://localhost:3000"})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetProducts(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(10), body["count"])

	data := body["data"].([]any)
	require.Len(t, data, 10)
	first := data[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Wireless Bluetooth Headphones", first["name"])
	last := data[9].(map[string]any)
	assert.Equal(t, float64(10), last["id"])
}

func TestGetProductByID(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/products/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "4K Ultra HD Webcam", body["name"])
	assert.Equal(t, 129.99, body["price"])

	w = doJSON(t, router, http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartCreatesEmptyCart(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["total"])
}

func TestCartFlow(t *testing.T) {
	router := setupRouter(t)

	// add product 1 (79.99) qty 1
	w := doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1, "qty": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, 79.99, body["total"])

	// add the same product qty 2: merges, never duplicates
	w = doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1, "qty": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	body = decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["quantity"])
	assert.Equal(t, 239.97, body["total"])

	// set quantity to 2
	w = doJSON(t, router, http.MethodPut, "/cart/1", map[string]any{"qty": 2})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, 159.98, body["total"])

	// remove the item
	w = doJSON(t, router, http.MethodDelete, "/cart/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["total"])
}

func TestAddToCartValidation(t *testing.T) {
	router := setupRouter(t)

	// missing fields
	w := doJSON(t, router, http.MethodPost, "/cart", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown product
	w = doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 999, "qty": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// negative quantity
	w = doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1, "qty": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemErrors(t *testing.T) {
	router := setupRouter(t)

	// no cart yet
	w := doJSON(t, router, http.MethodPut, "/cart/1", map[string]any{"qty": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1, "qty": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// item not in cart
	w = doJSON(t, router, http.MethodPut, "/cart/2", map[string]any{"qty": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// qty < 1 rejected, not floored
	w = doJSON(t, router, http.MethodPut, "/cart/1", map[string]any{"qty": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-numeric productId names no item
	w = doJSON(t, router, http.MethodPut, "/cart/abc", map[string]any{"qty": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCartItemErrors(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/cart/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 1, "qty": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/cart/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// cart unchanged by the failed delete
	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	body := decode(t, w)
	assert.Len(t, body["items"].([]any), 1)
}

func TestClearCart(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", map[string]any{"productId": 2, "qty": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["total"])
}

func TestCheckout(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/checkout", map[string]any{
		"customerName":  "Ada Lovelace",
		"customerEmail": "ada@example.com",
		"cartItems": []map[string]any{
			{"productId": 1, "name": "A", "price": 10, "quantity": 2},
			{"productId": 2, "name": "B", "price": 5, "quantity": 1},
		},
		// a client-supplied total is ignored, not trusted
		"total": 9999,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(25), body["total"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "Ada Lovelace", body["customerName"])
	assert.NotEmpty(t, body["orderId"])

	// checkout must not touch the server-side cart
	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	cartBody := decode(t, w)
	assert.Empty(t, cartBody["items"])
}

func TestCheckoutRejectsEmptyOrMalformedItems(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/checkout", map[string]any{
		"customerName":  "Ada",
		"customerEmail": "ada@example.com",
		"cartItems":     []any{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/checkout", map[string]any{
		"cartItems": []map[string]any{{"productId": 1, "price": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Vibe Commerce API is running", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestNoRoute(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
