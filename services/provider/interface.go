package provider

import "urbanfix/models"

// RegisterInput is the become-a-provider request body.
type RegisterInput struct {
	BusinessName string                 `json:"businessName"`
	Description  string                 `json:"description"`
	Categories   []string               `json:"categories"`
	Skills       []string               `json:"skills"`
	Pricing      models.ProviderPricing `json:"pricing"`
	ServiceAreas []models.ServiceArea   `json:"serviceAreas"`
	Availability models.Availability    `json:"availability"`
}

// SearchFilters carries the normalized directory search parameters. Point is
// the canonical query location built at the API boundary; the service never
// sees raw coordinate shapes.
type SearchFilters struct {
	Category     string
	MinRating    float64
	City         string
	Point        *models.GeoPoint
	RadiusMeters float64
	Limit        int64
}

// ProviderService maintains provider profiles and exposes directory search.
type ProviderService interface {
	Register(userID string, in RegisterInput) (*models.Provider, error)
	GetByID(id string) (*models.Provider, error)
	Search(filters SearchFilters) ([]models.Provider, error)
	AddPhoto(userID, url string) (*models.Provider, error)
}
