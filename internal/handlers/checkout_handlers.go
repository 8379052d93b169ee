package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibecart/vibe-commerce-api/internal/checkout"
	"github.com/vibecart/vibe-commerce-api/internal/models"
)

// CheckoutInput defines the JSON for POST /checkout. There is no total
// field to bind: the server recomputes it from the items regardless of
// what the client sends.
type CheckoutInput struct {
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CartItems     []models.CartItem `json:"cartItems"`
}

// ProcessCheckout is the handler for POST /checkout. The processor only
// builds the receipt; the storefront clears the cart afterwards with its
// own DELETE /cart call.
func (h *Handlers) ProcessCheckout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cartItems array is required"})
		return
	}

	receipt, err := h.Checkout.Process(input.CartItems, input.CustomerName, input.CustomerEmail)
	if err != nil {
		if errors.Is(err, checkout.ErrNoItems) || errors.Is(err, checkout.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.Logger.Error().Err(err).Msg("checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing checkout"})
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
