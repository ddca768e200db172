package providerRepo

import (
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchCriteria defines criteria for a provider directory search. Point is
// the canonical query location; the repository never sees raw lat/lng pairs.
type SearchCriteria struct {
	Category     models.Category
	MinRating    float64
	City         string
	Point        *models.GeoPoint
	RadiusMeters float64
	Limit        int64
}

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByUserID retrieves the provider profile owned by the given user.
	GetByUserID(userID string) (*models.Provider, error)
	// Search runs the directory search described by the criteria.
	Search(criteria SearchCriteria) ([]models.Provider, error)
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// UpdateRating overwrites the provider's rating summary.
	UpdateRating(id string, average float64, count int) error
	// IncrementStat bumps one of the stats counters by delta.
	IncrementStat(id string, field string, delta int) error
	// Count returns the total number of providers.
	Count() (int64, error)
}
