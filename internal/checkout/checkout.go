package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vibecart/vibe-commerce-api/internal/cart"
	"github.com/vibecart/vibe-commerce-api/internal/models"
)

var (
	// ErrNoItems - checkout was called with an empty item list.
	ErrNoItems = errors.New("cartItems array is required")
	// ErrInvalidItem - a submitted line is missing a usable price or quantity.
	ErrInvalidItem = errors.New("invalid cart item")
)

// Processor turns submitted line items into a receipt. It is stateless:
// it does not read the cart store, does not consult the catalog, does not
// decrement stock and does not persist anything. The caller owns any
// follow-up such as clearing the cart.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process validates the submitted items and builds a receipt. The total
// is always recomputed server-side from price * quantity; any total the
// client may have sent is ignored.
func (p *Processor) Process(items []models.CartItem, customerName, customerEmail string) (*models.Receipt, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for i, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has no valid quantity", ErrInvalidItem, i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: item %d has a negative price", ErrInvalidItem, i)
		}
	}

	return &models.Receipt{
		OrderID:       newOrderID(),
		Timestamp:     time.Now().UTC(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		Total:         cart.Total(items),
		Status:        models.ReceiptStatusCompleted,
	}, nil
}

// newOrderID is random-derived rather than time-derived: two checkouts in
// the same millisecond must still get distinct ids.
func newOrderID() string {
	return "ORD-" + uuid.NewString()
}
