package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vibecart/vibe-commerce-api/internal/models"
	"github.com/vibecart/vibe-commerce-api/internal/store"
)

var (
	// ErrProductNotFound - the productId does not resolve in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartNotFound - the user has no cart document yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrItemNotFound - the cart exists but has no line for the productId.
	ErrItemNotFound = errors.New("item not found in cart")
	// ErrInvalidQuantity - quantity is missing or not a positive integer.
	// Quantities are never silently floored to 1.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Service implements the cart operations over a CartStore, snapshotting
// product data from the catalog at add-time. Every mutation is a
// read-modify-write of the user's single cart document; a per-user mutex
// serializes those cycles so two racing requests on the same cart cannot
// lose an update.
type Service struct {
	products store.ProductStore
	carts    store.CartStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(products store.ProductStore, carts store.CartStore) *Service {
	return &Service{
		products: products,
		carts:    carts,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// GetOrCreate returns the user's cart, creating and persisting an empty
// one on first access. Carts never expire.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.carts.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	cart = newCart(userID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem adds quantity units of a product to the cart. If the product is
// already present its quantity is incremented; a duplicate productId line
// is never created. New lines snapshot the product's current name, price
// and image.
func (s *Service) AddItem(ctx context.Context, userID string, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.findOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(cart.Items, productID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     product.Image,
		})
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets (not increments) the quantity of an existing line.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	idx := indexOf(cart.Items, productID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	cart.Items[idx].Quantity = quantity

	return s.persist(ctx, cart)
}

// RemoveItem deletes the line matching productID.
func (s *Service) RemoveItem(ctx context.Context, userID string, productID int) (*models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	idx := indexOf(cart.Items, productID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	return s.persist(ctx, cart)
}

// Clear empties the cart and resets its total to zero. Clearing a cart
// that was never created persists a fresh empty one.
func (s *Service) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.findOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}

	return s.persist(ctx, cart)
}

// persist recomputes the derived total and writes the whole document.
// Caller holds the user lock.
func (s *Service) persist(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.Total = Total(cart.Items)
	cart.UpdatedAt = time.Now().UTC()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) findOrNew(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return newCart(userID), nil
	}
	return nil, err
}

func newCart(userID string) *models.Cart {
	now := time.Now().UTC()
	return &models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		Total:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func indexOf(items []models.CartItem, productID int) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Total is the one reduction in the system: sum(price * quantity), done
// in decimal so 79.99 x 3 comes out 239.97 and not a float artifact.
func Total(items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	total, _ := sum.Round(2).Float64()
	return total
}
