package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopping/models"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) CartRepository {
	return &mongoCartRepository{
		collection: collection,
	}
}

func (m *mongoCartRepository) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NilObjectID

	result, err := m.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return insertedObjectID(result)
}

// FindAll returns items by ascending _id, which follows insertion order.
func (m *mongoCartRepository) FindAll(ctx context.Context) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

func (m *mongoCartRepository) Update(ctx context.Context, id primitive.ObjectID, item models.CartItem) error {
	item.ID = primitive.NilObjectID

	filter := bson.M{"_id": id}
	update := bson.M{"$set": item}

	if _, err := m.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (m *mongoCartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}
