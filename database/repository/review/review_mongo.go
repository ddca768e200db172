package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"urbanfix/database"
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new ReviewRepository backed by the "reviews"
// collection.
func NewMongoReviewRepo(db *database.Client) ReviewRepository {
	return &MongoReviewRepo{coll: db.Collection("reviews")}
}

func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review for booking %s: %w", bookingID, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) ListApprovedByProvider(providerID string) ([]models.Review, error) {
	return r.listApproved(providerID, nil)
}

func (r *MongoReviewRepo) ListApprovedByProviderPaged(providerID string, limit int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.listApproved(providerID, opts)
}

func (r *MongoReviewRepo) listApproved(providerID string, opts *options.FindOptions) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := bson.M{
		"providerId":        providerID,
		"moderation.status": models.ModerationApproved,
	}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
