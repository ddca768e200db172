package provider

import (
	"math"
	"time"

	providerRepo "urbanfix/database/repository/provider"
	userRepo "urbanfix/database/repository/user"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultServiceAreaRadiusKm = 10

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Users userRepo.UserRepository
}

// sanitizeServiceAreas drops areas whose geo-point is missing or malformed.
// Dropping is silent: a bad point must never reach the geospatial index.
func sanitizeServiceAreas(areas []models.ServiceArea) []models.ServiceArea {
	cleaned := make([]models.ServiceArea, 0, len(areas))
	for _, area := range areas {
		if area.Location == nil || !area.Location.IsValid() {
			continue
		}
		if area.RadiusKm <= 0 {
			area.RadiusKm = defaultServiceAreaRadiusKm
		}
		cleaned = append(cleaned, area)
	}
	return cleaned
}

// Register creates the provider profile for a user and flips the user's role.
// A user owns at most one profile.
func (s *DefaultProviderService) Register(userID string, in RegisterInput) (*models.Provider, error) {
	if in.BusinessName == "" || in.Description == "" {
		return nil, utils.NewValidationError("Missing businessName or description")
	}
	if len(in.Categories) == 0 {
		return nil, utils.NewValidationError("At least one category is required")
	}
	categories := make([]models.Category, 0, len(in.Categories))
	for _, raw := range in.Categories {
		category := models.Category(raw)
		if !category.IsValid() {
			return nil, utils.NewValidationError("Invalid category: " + raw)
		}
		categories = append(categories, category)
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError("Provider profile already exists for this user")
	}

	pricing := in.Pricing
	if pricing.Type == "" {
		pricing.Type = models.PricingHourly
	}
	if pricing.Currency == "" {
		pricing.Currency = "INR"
	}

	now := time.Now()
	p := &models.Provider{
		ID:                 uuid.NewString(),
		UserID:             userID,
		BusinessName:       in.BusinessName,
		Description:        in.Description,
		Categories:         categories,
		Skills:             in.Skills,
		Pricing:            pricing,
		ServiceAreas:       sanitizeServiceAreas(in.ServiceAreas),
		Availability:       in.Availability,
		Rating:             models.Rating{},
		IsActive:           true,
		VerificationStatus: models.VerificationPending,
		Stats:              models.ProviderStats{JoinedDate: now},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	// Registering as a provider flips the owning account's role. The profile
	// is already persisted; a failed role flip is logged, not fatal.
	if err := s.Users.UpdateWithDocument(userID, bson.M{"$set": bson.M{
		"role":      models.RoleProvider,
		"updatedAt": now,
	}}); err != nil {
		utils.GetLogger().Warn("failed to flip user role to provider",
			zap.String("userId", userID), zap.Error(err))
	}
	return p, nil
}

func (s *DefaultProviderService) GetByID(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Provider not found")
	}
	return p, nil
}

// Search runs the directory search and, for geospatial queries, exposes the
// computed distance rounded to one decimal kilometer. No match is not an
// error.
func (s *DefaultProviderService) Search(filters SearchFilters) ([]models.Provider, error) {
	if filters.Category != "" && !models.Category(filters.Category).IsValid() {
		return nil, utils.NewValidationError("Invalid category: " + filters.Category)
	}

	criteria := providerRepo.SearchCriteria{
		Category:     models.Category(filters.Category),
		MinRating:    filters.MinRating,
		City:         filters.City,
		Point:        filters.Point,
		RadiusMeters: filters.RadiusMeters,
		Limit:        filters.Limit,
	}
	providers, err := s.Repo.Search(criteria)
	if err != nil {
		return nil, err
	}

	if filters.Point != nil {
		for i := range providers {
			km := RoundDistanceKm(providers[i].Distance)
			providers[i].DistanceKm = &km
		}
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers, nil
}

// RoundDistanceKm converts a distance in meters to kilometers rounded to one
// decimal.
func RoundDistanceKm(meters float64) float64 {
	return math.Round(meters/1000*10) / 10
}

// AddPhoto appends an uploaded photo URL to the caller's provider profile.
func (s *DefaultProviderService) AddPhoto(userID, url string) (*models.Provider, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Provider profile not found")
	}
	if err := s.Repo.UpdateWithDocument(p.ID, bson.M{
		"$push": bson.M{"photos": url},
		"$set":  bson.M{"updatedAt": time.Now()},
	}); err != nil {
		return nil, err
	}
	p.Photos = append(p.Photos, url)
	return p, nil
}
