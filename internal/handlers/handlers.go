package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vibecart/vibe-commerce-api/internal/cart"
	"github.com/vibecart/vibe-commerce-api/internal/checkout"
	"github.com/vibecart/vibe-commerce-api/internal/store"
)

// defaultUserID stands in for a real account system. Every cart call is
// pinned to this id; threading a caller-supplied identity through the
// cart service is all it would take to go multi-user.
const defaultUserID = "mock-user-001"

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	Products store.ProductStore
	Cart     *cart.Service
	Checkout *checkout.Processor
	Logger   zerolog.Logger
}

// HealthCheck is the handler for GET /health.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Vibe Commerce API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// APIIndex is the handler for GET /api, a human-readable endpoint map.
func (h *Handlers) APIIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Vibe Commerce API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"products": "/products",
			"cart":     "/cart",
			"checkout": "/checkout",
			"health":   "/health",
		},
	})
}
