package models

import "time"

type MessageContent struct {
	Text string `bson:"text" json:"text"`
}

// Message is one turn of a booking-anchored conversation between the
// customer and the owning provider's user.
type Message struct {
	ID          string         `bson:"id" json:"id"`
	SenderID    string         `bson:"senderId" json:"senderId"`
	ReceiverID  string         `bson:"receiverId" json:"receiverId"`
	BookingID   string         `bson:"bookingId" json:"bookingId"`
	MessageType string         `bson:"messageType" json:"messageType"` // only "text" is wired
	Content     MessageContent `bson:"content" json:"content"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}
