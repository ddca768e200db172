package reviewRepo

import "urbanfix/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review for a booking, if any.
	GetByBookingID(bookingID string) (*models.Review, error)
	// ListApprovedByProvider returns all approved reviews for a provider.
	ListApprovedByProvider(providerID string) ([]models.Review, error)
	// ListApprovedByProviderPaged returns approved reviews, newest first, capped.
	ListApprovedByProviderPaged(providerID string, limit int64) ([]models.Review, error)
}
