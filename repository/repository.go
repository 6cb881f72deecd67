package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopping/models"
)

// ProductRepository is what the catalog controller needs from the store.
type ProductRepository interface {
	Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]bson.M, error)
}

// CartRepository is what the cart controller needs from the store. Update
// and Delete succeed when nothing matches.
type CartRepository interface {
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.CartItem, error)
	Update(ctx context.Context, id primitive.ObjectID, item models.CartItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
