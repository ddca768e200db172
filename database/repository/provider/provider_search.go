package providerRepo

import (
	"context"
	"fmt"
	"time"

	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const searchHardCap = 100

// Search runs the directory search. With a query point it uses a $geoNear
// pipeline over the providers' service-area locations, sorted by ascending
// distance then descending rating; otherwise it matches on city substring or
// the base predicate alone, sorted by descending rating.
func (r *MongoProviderRepo) Search(criteria SearchCriteria) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > searchHardCap {
		limit = searchHardCap
	}

	// Base predicate: active, optional category, optional minimum rating.
	match := bson.M{"isActive": true}
	if criteria.Category != "" {
		match["categories"] = criteria.Category
	}
	if criteria.MinRating > 0 {
		match["rating.average"] = bson.M{"$gte": criteria.MinRating}
	}

	var pipeline mongo.Pipeline

	switch {
	case criteria.Point != nil && criteria.Point.IsValid():
		// $geoNear must be the first stage; it applies the base predicate as
		// a co-filter and emits the distance in meters.
		pipeline = append(pipeline, bson.D{
			{Key: "$geoNear", Value: bson.D{
				{Key: "near", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: criteria.Point.Coordinates},
				}},
				{Key: "distanceField", Value: "distance"},
				{Key: "maxDistance", Value: criteria.RadiusMeters},
				{Key: "spherical", Value: true},
				{Key: "query", Value: match},
				{Key: "key", Value: "serviceAreas.location"},
			}},
		})
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "distance", Value: 1},
			{Key: "rating.average", Value: -1},
		}}})
	case criteria.City != "":
		match["serviceAreas.areaName"] = bson.M{"$regex": criteria.City, "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "rating.average", Value: -1},
		}}})
	default:
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "rating.average", Value: -1},
		}}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("provider search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}
