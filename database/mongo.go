package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is the connection owned by a service's main. Handlers get
// collections from it at construction time.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials MongoDB and pings the primary so that a bad address fails
// at startup instead of on the first request. timeout bounds both the dial
// and server selection.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Store, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Collection decodes untyped documents as bson.M so nested documents
// serialize back to JSON objects.
func (s *Store) Collection(name string) *mongo.Collection {
	opts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	return s.DB.Collection(name, opts)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
