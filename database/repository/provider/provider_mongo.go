package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"urbanfix/database"
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new ProviderRepository backed by the
// "providers" collection.
func NewMongoProviderRepo(db *database.Client) ProviderRepository {
	return &MongoProviderRepo{coll: db.Collection("providers")}
}

func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider for user %s: %w", userID, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}

func (r *MongoProviderRepo) UpdateRating(id string, average float64, count int) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{
		"rating.average": average,
		"rating.count":   count,
		"updatedAt":      time.Now(),
	}})
}

func (r *MongoProviderRepo) IncrementStat(id string, field string, delta int) error {
	return r.UpdateWithDocument(id, bson.M{
		"$inc": bson.M{"stats." + field: delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
}

func (r *MongoProviderRepo) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return n, nil
}
