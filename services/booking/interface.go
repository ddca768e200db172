package booking

import "urbanfix/models"

// QuickBookInput is the create-booking request body. Address, city, state
// and pincode are all required; everything else has a default.
type QuickBookInput struct {
	ProviderID    string   `json:"providerId"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	ScheduledDate string   `json:"scheduledDate"`
	ScheduledTime string   `json:"scheduledTime"`
	Duration      int      `json:"duration"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	PaymentMethod string   `json:"paymentMethod"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// ManageInput is the transition request body.
type ManageInput struct {
	BookingID string `json:"bookingId"`
	Action    string `json:"action"`
	Notes     string `json:"notes"`
}

// BookingService owns the booking lifecycle: creation and transitions.
type BookingService interface {
	QuickBook(userID string, in QuickBookInput) (*models.Booking, error)
	Manage(userID string, role models.Role, in ManageInput) (*models.Booking, error)
	GetForParticipant(userID string, role models.Role, bookingID string) (*models.Booking, error)
	ListForCustomer(userID string) ([]models.Booking, error)
	ListForProvider(userID string) ([]models.Booking, error)
}
