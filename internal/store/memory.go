package store

import (
	"context"
	"sort"
	"sync"

	"github.com/vibecart/vibe-commerce-api/internal/models"
)

// MemoryProducts is an in-memory ProductStore used by tests and by local
// runs without a Mongo instance.
type MemoryProducts struct {
	mu   sync.RWMutex
	byID map[int]models.Product
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{byID: make(map[int]models.Product)}
}

var _ ProductStore = (*MemoryProducts)(nil)

func (s *MemoryProducts) List(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	// same ordering contract as the Mongo store
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (s *MemoryProducts) ReplaceAll(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]models.Product, len(products))
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return nil
}

// MemoryCarts is an in-memory CartStore. Documents are deep-copied on the
// way in and out so callers never share item slices with the store.
type MemoryCarts struct {
	mu     sync.RWMutex
	byUser map[string]models.Cart
}

func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{byUser: make(map[string]models.Cart)}
}

var _ CartStore = (*MemoryCarts)(nil)

func (s *MemoryCarts) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyCart(cart)
	return &cp, nil
}

func (s *MemoryCarts) Save(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[cart.UserID] = copyCart(*cart)
	return nil
}

func copyCart(c models.Cart) models.Cart {
	cp := c
	cp.Items = make([]models.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}
