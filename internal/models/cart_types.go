package models

import "time"

// CartItem is one line of a cart: a snapshot of the product's name, price
// and image taken at add-time. It is NOT re-synced if the product later
// changes; the price the shopper saw is the price that sticks.
type CartItem struct {
	ProductID int     `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Cart is the model for the 'carts' collection. Exactly one document
// exists per userId. Total is a derived field recomputed on every
// mutation; it is never trusted as input.
type Cart struct {
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	Total     float64    `json:"total" bson:"total"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}
