package bookingRepo

import (
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its internal ID.
	GetByID(id string) (*models.Booking, error)
	// ApplyTransition atomically sets the new status (plus any extra fields)
	// and pushes one timeline entry, as a single write.
	ApplyTransition(id string, status models.BookingStatus, extra bson.M, entry models.TimelineEntry) (*models.Booking, error)
	// SetHasReview flags the booking as reviewed.
	SetHasReview(id string) error
	// ListByUser returns a customer's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByProvider returns a provider's bookings, newest first.
	ListByProvider(providerID string) ([]models.Booking, error)
	// CountByStatus returns booking counts grouped by status.
	CountByStatus() (map[models.BookingStatus]int64, error)
	// SumCompletedTotals returns the sum of totalAmount over completed bookings.
	SumCompletedTotals() (float64, error)
}
