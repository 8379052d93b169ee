package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibecart/vibe-commerce-api/internal/models"
)

// MongoProducts backs ProductStore with the 'products' collection.
type MongoProducts struct {
	col *mongo.Collection
}

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{col: db.Collection("products")}
}

var _ ProductStore = (*MongoProducts)(nil)

// List returns every product sorted by id ascending. The seeder inserts
// the fixture in id order, so this reproduces insertion order.
func (s *MongoProducts) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := s.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ReplaceAll drops every product and inserts the given set, in order.
func (s *MongoProducts) ReplaceAll(ctx context.Context, products []models.Product) error {
	if _, err := s.col.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}

// MongoCarts backs CartStore with the 'carts' collection.
type MongoCarts struct {
	col *mongo.Collection
}

func NewMongoCarts(db *mongo.Database) *MongoCarts {
	return &MongoCarts{col: db.Collection("carts")}
}

var _ CartStore = (*MongoCarts)(nil)

func (s *MongoCarts) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.col.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Save upserts the full cart document keyed by userId.
func (s *MongoCarts) Save(ctx context.Context, cart *models.Cart) error {
	filter := bson.D{{Key: "userId", Value: cart.UserID}}
	opts := options.Replace().SetUpsert(true)
	_, err := s.col.ReplaceOne(ctx, filter, cart, opts)
	return err
}
