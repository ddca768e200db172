package review

import (
	"math"
	"time"

	bookingRepo "urbanfix/database/repository/booking"
	providerRepo "urbanfix/database/repository/provider"
	reviewRepo "urbanfix/database/repository/review"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews   reviewRepo.ReviewRepository
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
}

// Submit validates ownership, completion and uniqueness, persists the review
// (auto-approved), flags the booking and recomputes the provider rating.
// Once the review is written, follow-up failures degrade (stale rating, or
// an unset hasReview flag) rather than roll it back.
func (s *DefaultReviewService) Submit(userID string, in SubmitInput) (*models.Review, error) {
	if in.BookingID == "" {
		return nil, utils.NewValidationError("Missing bookingId or rating")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.NewValidationError("Rating must be between 1 and 5")
	}

	booking, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	if booking.UserID != userID {
		return nil, utils.NewForbiddenError("Not your booking")
	}
	if booking.Status != models.StatusCompleted {
		return nil, utils.NewValidationError("Can only review completed bookings")
	}

	existing, err := s.Reviews.GetByBookingID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError("Review already exists for this booking")
	}

	r := &models.Review{
		ID:             uuid.NewString(),
		UserID:         userID,
		ProviderID:     booking.ProviderID,
		BookingID:      in.BookingID,
		Rating:         in.Rating,
		Title:          in.Title,
		Comment:        in.Comment,
		DetailedRating: in.DetailedRating,
		Moderation:     models.Moderation{Status: models.ModerationApproved},
		IsVerified:     true,
		CreatedAt:      time.Now(),
	}
	if err := s.Reviews.Create(r); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := s.Bookings.SetHasReview(booking.ID); err != nil {
		logger.Warn("failed to flag booking as reviewed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	if err := s.recomputeProviderRating(booking.ProviderID); err != nil {
		logger.Warn("failed to recompute provider rating; rating left stale",
			zap.String("providerId", booking.ProviderID), zap.Error(err))
	}
	return r, nil
}

// recomputeProviderRating re-reads every approved review for the provider
// and overwrites the summary. The full pass self-heals from any prior
// inconsistency instead of trusting accumulator arithmetic.
func (s *DefaultReviewService) recomputeProviderRating(providerID string) error {
	reviews, err := s.Reviews.ListApprovedByProvider(providerID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return s.Providers.UpdateRating(providerID, 0, 0)
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	average := math.Round(float64(total)/float64(len(reviews))*10) / 10
	return s.Providers.UpdateRating(providerID, average, len(reviews))
}

func (s *DefaultReviewService) ListForProvider(providerID string, limit int64) ([]models.Review, error) {
	if providerID == "" {
		return nil, utils.NewValidationError("Missing providerId")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	reviews, err := s.Reviews.ListApprovedByProviderPaged(providerID, limit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
