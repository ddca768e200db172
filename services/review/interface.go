package review

import "urbanfix/models"

// SubmitInput is the create-review request body.
type SubmitInput struct {
	BookingID      string                 `json:"bookingId"`
	Rating         int                    `json:"rating"`
	Title          string                 `json:"title"`
	Comment        string                 `json:"comment"`
	DetailedRating *models.DetailedRating `json:"detailedRating"`
}

// ReviewService accepts one review per completed booking and keeps the
// owning provider's rating summary in sync.
type ReviewService interface {
	Submit(userID string, in SubmitInput) (*models.Review, error)
	ListForProvider(providerID string, limit int64) ([]models.Review, error)
}
