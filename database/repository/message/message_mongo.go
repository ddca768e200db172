package messageRepo

import (
	"context"
	"fmt"
	"time"

	"urbanfix/database"
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo creates a new MessageRepository backed by the
// "messages" collection.
func NewMongoMessageRepo(db *database.Client) MessageRepository {
	return &MongoMessageRepo{coll: db.Collection("messages")}
}

func (r *MongoMessageRepo) Append(message *models.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (r *MongoMessageRepo) ListByBooking(bookingID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)
	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}
