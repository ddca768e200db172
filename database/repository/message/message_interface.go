package messageRepo

import "urbanfix/models"

// MessageRepository defines methods for the append-only message log.
type MessageRepository interface {
	// Append inserts a new message.
	Append(message *models.Message) error
	// ListByBooking returns a booking's messages in chronological order.
	ListByBooking(bookingID string) ([]models.Message, error)
}
