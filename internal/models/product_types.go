package models

// Product is the model for the 'products' collection.
// Products are seeded once at startup and are read-only at request time;
// the integer ID (not Mongo's _id) is the identifier the API exposes.
type Product struct {
	ID          int     `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image" bson:"image"`
	Category    string  `json:"category" bson:"category"`
	Stock       int     `json:"stock" bson:"stock"`
}
