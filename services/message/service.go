package message

import (
	"time"

	bookingRepo "urbanfix/database/repository/booking"
	messageRepo "urbanfix/database/repository/message"
	providerRepo "urbanfix/database/repository/provider"
	"urbanfix/models"
	"urbanfix/services/booking"
	"urbanfix/utils"

	"github.com/google/uuid"
)

// DefaultMessageService implements MessageService.
type DefaultMessageService struct {
	Messages  messageRepo.MessageRepository
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
}

// resolveParticipants loads the booking and returns the two legitimate
// participant identities: the customer and the owning provider's user.
func (s *DefaultMessageService) resolveParticipants(bookingID string) (*models.Booking, string, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	if b == nil {
		return nil, "", utils.NewNotFoundError("Booking not found")
	}
	provider, err := s.Providers.GetByID(b.ProviderID)
	if err != nil {
		return nil, "", err
	}
	if provider == nil {
		return nil, "", utils.NewNotFoundError("Provider not found")
	}
	return b, provider.UserID, nil
}

// Post appends one message. The sender must be a participant; the receiver
// is always the other participant.
func (s *DefaultMessageService) Post(userID, bookingID, text string) (*models.Message, error) {
	if bookingID == "" || text == "" {
		return nil, utils.NewValidationError("Missing bookingId or text")
	}
	b, providerUserID, err := s.resolveParticipants(bookingID)
	if err != nil {
		return nil, err
	}
	if userID != b.UserID && userID != providerUserID {
		return nil, utils.NewForbiddenError("Not a participant of this booking")
	}

	receiverID := b.UserID
	if userID == b.UserID {
		receiverID = providerUserID
	}

	msg := &models.Message{
		ID:          uuid.NewString(),
		SenderID:    userID,
		ReceiverID:  receiverID,
		BookingID:   bookingID,
		MessageType: "text",
		Content:     models.MessageContent{Text: text},
		CreatedAt:   time.Now(),
	}
	if err := s.Messages.Append(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns a booking's conversation in order. Participant-only.
func (s *DefaultMessageService) List(userID, bookingID string) ([]models.Message, error) {
	if bookingID == "" {
		return nil, utils.NewValidationError("Missing bookingId")
	}
	b, providerUserID, err := s.resolveParticipants(bookingID)
	if err != nil {
		return nil, err
	}
	if userID != b.UserID && userID != providerUserID {
		return nil, utils.NewForbiddenError("Not a participant of this booking")
	}
	messages, err := s.Messages.ListByBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Contact opens a conversation with a provider by creating a zero-value
// inquiry booking to anchor the thread, then posting the first message.
func (s *DefaultMessageService) Contact(userID, providerID, text string) (*ContactResult, error) {
	if providerID == "" || text == "" {
		return nil, utils.NewValidationError("Missing providerId or text")
	}
	provider, err := s.Providers.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, utils.NewNotFoundError("Provider not found")
	}

	inquiry := booking.NewInquiry(userID, provider)
	if err := s.Bookings.Create(inquiry); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:          uuid.NewString(),
		SenderID:    userID,
		ReceiverID:  provider.UserID,
		BookingID:   inquiry.ID,
		MessageType: "text",
		Content:     models.MessageContent{Text: text},
		CreatedAt:   time.Now(),
	}
	if err := s.Messages.Append(msg); err != nil {
		return nil, err
	}
	return &ContactResult{BookingID: inquiry.ID, MessageID: msg.ID}, nil
}
