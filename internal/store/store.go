package store

import (
	"context"
	"errors"

	"github.com/vibecart/vibe-commerce-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ProductStore is the read-mostly catalog collection. ReplaceAll exists
// only for the startup seeder; the API layer never mutates products.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// CartStore persists cart documents keyed by userId. Save writes the
// whole document in one call (upsert), so a failed write leaves the
// stored cart untouched - there is no partially written item list.
type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}
