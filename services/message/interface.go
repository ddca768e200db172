package message

import "urbanfix/models"

// ContactResult identifies the inquiry booking and first message created by
// Contact.
type ContactResult struct {
	BookingID string `json:"bookingId"`
	MessageID string `json:"messageId"`
}

// MessageService relays booking-anchored messages between the two legitimate
// participants of a booking.
type MessageService interface {
	Post(userID, bookingID, text string) (*models.Message, error)
	List(userID, bookingID string) ([]models.Message, error)
	Contact(userID, providerID, text string) (*ContactResult, error)
}
