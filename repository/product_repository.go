package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopping/models"
)

var ErrUnexpectedID = errors.New("store returned a non-ObjectID identifier")

type mongoProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository expects a collection from database.Store, which
// decodes nested documents as maps.
func NewProductRepository(collection *mongo.Collection) ProductRepository {
	return &mongoProductRepository{
		collection: collection,
	}
}

func (m *mongoProductRepository) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	result, err := m.collection.InsertOne(ctx, bson.M(product))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert product: %w", err)
	}
	return insertedObjectID(result)
}

func (m *mongoProductRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := []bson.M{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func insertedObjectID(result *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, ErrUnexpectedID
	}
	return id, nil
}
