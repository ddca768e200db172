package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps the MongoDB client with an explicit connect/close lifecycle.
// It is constructed once in main and injected into the repositories.
type Client struct {
	mc     *mongo.Client
	dbName string
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(uri, dbName string) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	mc, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &Client{mc: mc, dbName: dbName}, nil
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.mc.Database(c.dbName).Collection(name)
}

// Close disconnects the underlying client.
func (c *Client) Close(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}
