package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vibecart/vibe-commerce-api/internal/cart"
	"github.com/vibecart/vibe-commerce-api/internal/models"
)

//
// --- Cart Handlers ---
//
// Every mutating response returns the complete current {items, total},
// never a delta; the storefront replaces its local cart state wholesale.
//

// GetCart is the handler for GET /cart. Creates an empty cart lazily on
// first read.
func (h *Handlers) GetCart(c *gin.Context) {
	crt, err := h.Cart.GetOrCreate(c.Request.Context(), defaultUserID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to fetch cart")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, cartBody(crt))
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int `json:"productId" binding:"required"`
	Qty       int `json:"qty" binding:"required"`
}

// AddToCart is the handler for POST /cart.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId and qty are required"})
		return
	}

	crt, err := h.Cart.AddItem(c.Request.Context(), defaultUserID, input.ProductID, input.Qty)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			h.Logger.Error().Err(err).Int("productId", input.ProductID).Msg("failed to add to cart")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, cartBody(crt))
}

// UpdateCartItemInput defines the JSON for setting an item's quantity.
// gt=0 rejects zero and negatives outright; quantities are never floored.
type UpdateCartItemInput struct {
	Qty int `json:"qty" binding:"required,gt=0"`
}

// UpdateCartItem is the handler for PUT /cart/:productId. Sets, not
// increments, the line quantity.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	productID, ok := h.cartProductID(c)
	if !ok {
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "qty must be a positive integer"})
		return
	}

	crt, err := h.Cart.UpdateQuantity(c.Request.Context(), defaultUserID, productID, input.Qty)
	if err != nil {
		h.cartError(c, err, productID)
		return
	}

	c.JSON(http.StatusOK, cartBody(crt))
}

// DeleteCartItem is the handler for DELETE /cart/:productId.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	productID, ok := h.cartProductID(c)
	if !ok {
		return
	}

	crt, err := h.Cart.RemoveItem(c.Request.Context(), defaultUserID, productID)
	if err != nil {
		h.cartError(c, err, productID)
		return
	}

	c.JSON(http.StatusOK, cartBody(crt))
}

// ClearCart is the handler for DELETE /cart.
func (h *Handlers) ClearCart(c *gin.Context) {
	crt, err := h.Cart.Clear(c.Request.Context(), defaultUserID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to clear cart")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, cartBody(crt))
}

// cartProductID coerces the :productId path param to the catalog's
// integer id. A non-numeric value names no item, so it is a 404 rather
// than a 400.
func (h *Handlers) cartProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
		return 0, false
	}
	return id, true
}

func (h *Handlers) cartError(c *gin.Context, err error, productID int) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.Logger.Error().Err(err).Int("productId", productID).Msg("cart operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func cartBody(crt *models.Cart) gin.H {
	return gin.H{"items": crt.Items, "total": crt.Total}
}
