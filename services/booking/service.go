package booking

import (
	"fmt"
	"strings"
	"time"

	bookingRepo "urbanfix/database/repository/booking"
	providerRepo "urbanfix/database/repository/provider"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	defaultDuration      = 60
	defaultScheduledTime = "10:00"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
}

// newBookingToken builds the human-readable booking identifier, e.g.
// BK1725145600000X4QZ.
func newBookingToken(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("BK%d%s", now.UnixMilli(), suffix)
}

// parseScheduledDate accepts RFC 3339 or a plain calendar date.
func parseScheduledDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// QuickBook creates a booking against an active provider with derived
// pricing and a seeded timeline. All validation happens before the write.
func (s *DefaultBookingService) QuickBook(userID string, in QuickBookInput) (*models.Booking, error) {
	if in.ProviderID == "" {
		return nil, utils.NewValidationError("Missing providerId")
	}
	if in.Address == "" || in.City == "" || in.State == "" || in.Pincode == "" {
		return nil, utils.NewValidationError("Address fields are required: address, city, state, pincode")
	}

	provider, err := s.Providers.GetByID(in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, utils.NewNotFoundError("Provider not found")
	}

	category := provider.FirstCategory()
	if in.Category != "" {
		category = models.Category(in.Category)
		if !category.IsValid() {
			return nil, utils.NewValidationError("Invalid category")
		}
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("Booking for %s", provider.BusinessName)
	}

	duration := in.Duration
	if duration <= 0 {
		duration = defaultDuration
	}

	now := time.Now()
	scheduledDate := now.Add(24 * time.Hour)
	if in.ScheduledDate != "" {
		parsed, err := parseScheduledDate(in.ScheduledDate)
		if err != nil {
			return nil, utils.NewValidationError("Invalid scheduledDate")
		}
		scheduledDate = parsed
	}
	scheduledTime := in.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = defaultScheduledTime
	}

	method := models.PaymentCOD
	if in.PaymentMethod != "" {
		method = models.PaymentMethod(in.PaymentMethod)
	}

	location := models.ServiceLocation{
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Pincode: in.Pincode,
	}
	// Coordinates arrive as separate lat/lng values and are normalized into
	// one canonical point before the booking ever sees them.
	if in.Latitude != nil && in.Longitude != nil {
		point := models.NewGeoPoint(*in.Latitude, *in.Longitude)
		location.Coordinates = &point
	}

	b := &models.Booking{
		ID:              uuid.NewString(),
		BookingID:       newBookingToken(now),
		UserID:          userID,
		ProviderID:      provider.ID,
		ServiceType:     "on-site",
		Category:        category,
		Description:     description,
		ScheduledDate:   scheduledDate,
		ScheduledTime:   scheduledTime,
		Duration:        duration,
		ServiceLocation: location,
		Pricing:         Quote(provider.Pricing.HourlyRate, duration),
		Payment:         models.Payment{Method: method, Status: models.PaymentPending},
		Status:          models.StatusPending,
		Timeline: []models.TimelineEntry{{
			Status:    models.StatusPending,
			Timestamp: now,
			UpdatedBy: userID,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// NewInquiry builds the zero-value placeholder booking that anchors a
// contact conversation with a provider.
func NewInquiry(userID string, provider *models.Provider) *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:            uuid.NewString(),
		BookingID:     newBookingToken(now),
		UserID:        userID,
		ProviderID:    provider.ID,
		ServiceType:   "inquiry",
		Category:      provider.FirstCategory(),
		Description:   fmt.Sprintf("Inquiry with %s", provider.BusinessName),
		ScheduledDate: now.Add(24 * time.Hour),
		ScheduledTime: defaultScheduledTime,
		Duration:      30,
		ServiceLocation: models.ServiceLocation{
			Address: "Not provided",
			City:    "Not provided",
			State:   "Not provided",
			Pincode: "000000",
		},
		Pricing: ZeroPricing(),
		Payment: models.Payment{Method: models.PaymentCOD, Status: models.PaymentPending},
		Status:  models.StatusPending,
		Timeline: []models.TimelineEntry{{
			Status:    models.StatusPending,
			Timestamp: now,
			UpdatedBy: userID,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// resolveActor determines the requesting identity's relationship to the
// booking. Admin wins over participant roles.
func (s *DefaultBookingService) resolveActor(b *models.Booking, userID string, role models.Role) (Actor, error) {
	if role == models.RoleAdmin {
		return ActorAdmin, nil
	}
	if b.UserID == userID {
		return ActorCustomer, nil
	}
	provider, err := s.Providers.GetByUserID(userID)
	if err != nil {
		return ActorNone, err
	}
	if provider != nil && provider.ID == b.ProviderID {
		return ActorProvider, nil
	}
	return ActorNone, nil
}

// Manage applies one transition action. Authorization and state preconditions
// are validated before any write; the transition itself is a single update
// that sets the new status and appends exactly one timeline entry.
func (s *DefaultBookingService) Manage(userID string, role models.Role, in ManageInput) (*models.Booking, error) {
	if in.BookingID == "" || in.Action == "" {
		return nil, utils.NewValidationError("Missing bookingId or action")
	}

	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}

	actor, err := s.resolveActor(b, userID, role)
	if err != nil {
		return nil, err
	}
	if actor == ActorNone {
		return nil, utils.NewForbiddenError("Unauthorized to manage this booking")
	}

	action := models.BookingAction(in.Action)
	newStatus, err := NextStatus(b.Status, action, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := bson.M{}

	switch action {
	case models.ActionDecline:
		reason := in.Notes
		if reason == "" {
			reason = "Declined by service provider"
		}
		extra["cancellation"] = models.Cancellation{CancelledBy: userID, CancelledAt: now, Reason: reason}
	case models.ActionCancel:
		reason := in.Notes
		if reason == "" {
			if actor == ActorCustomer {
				reason = "Cancelled by customer"
			} else {
				reason = "Cancelled by provider"
			}
		}
		extra["cancellation"] = models.Cancellation{CancelledBy: userID, CancelledAt: now, Reason: reason}
	case models.ActionComplete:
		work := in.Notes
		if work == "" {
			work = "Service completed successfully"
		}
		extra["completion"] = models.Completion{CompletedAt: now, WorkDescription: work}
		if b.Payment.Method == models.PaymentCOD {
			extra["payment.status"] = models.PaymentPaid
			extra["payment.paidAt"] = now
			extra["payment.codAmount"] = b.Pricing.TotalAmount
		}
	}

	entry := models.TimelineEntry{
		Status:    newStatus,
		Timestamp: now,
		UpdatedBy: userID,
		Notes:     in.Notes,
	}
	updated, err := s.Bookings.ApplyTransition(b.ID, newStatus, extra, entry)
	if err != nil {
		return nil, err
	}

	s.updateProviderStats(updated, action)
	return updated, nil
}

// updateProviderStats bumps the provider's cumulative counters after a
// successful transition. Failures leave the stats stale; the transition
// itself is already committed, so they are logged and not surfaced.
func (s *DefaultBookingService) updateProviderStats(b *models.Booking, action models.BookingAction) {
	logger := utils.GetLogger()
	var err error
	switch action {
	case models.ActionComplete:
		if err = s.Providers.IncrementStat(b.ProviderID, "completedBookings", 1); err == nil && b.Payment.Method == models.PaymentCOD {
			err = s.Providers.UpdateWithDocument(b.ProviderID, bson.M{
				"$inc": bson.M{"stats.totalEarnings": b.Pricing.TotalAmount},
			})
		}
	case models.ActionCancel, models.ActionDecline:
		err = s.Providers.IncrementStat(b.ProviderID, "cancelledBookings", 1)
	default:
		return
	}
	if err != nil {
		logger.Warn("failed to update provider stats",
			zap.String("providerId", b.ProviderID),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

// GetForParticipant returns a booking if the requester is its customer, the
// owning provider, or an admin.
func (s *DefaultBookingService) GetForParticipant(userID string, role models.Role, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	actor, err := s.resolveActor(b, userID, role)
	if err != nil {
		return nil, err
	}
	if actor == ActorNone {
		return nil, utils.NewForbiddenError("Not a participant of this booking")
	}
	return b, nil
}

func (s *DefaultBookingService) ListForCustomer(userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(userID)
}

// ListForProvider resolves the provider profile owned by userID and returns
// its bookings.
func (s *DefaultBookingService) ListForProvider(userID string) ([]models.Booking, error) {
	provider, err := s.Providers.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, utils.NewNotFoundError("Provider profile not found")
	}
	return s.Bookings.ListByProvider(provider.ID)
}
