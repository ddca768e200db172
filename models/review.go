package models

import "time"

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// DetailedRating holds the optional per-aspect sub-ratings, each 1-5.
type DetailedRating struct {
	Punctuality     int `bson:"punctuality,omitempty" json:"punctuality,omitempty"`
	Quality         int `bson:"quality,omitempty" json:"quality,omitempty"`
	Professionalism int `bson:"professionalism,omitempty" json:"professionalism,omitempty"`
	Communication   int `bson:"communication,omitempty" json:"communication,omitempty"`
	ValueForMoney   int `bson:"valueForMoney,omitempty" json:"valueForMoney,omitempty"`
}

type Moderation struct {
	Status      ModerationStatus `bson:"status" json:"status"`
	ModeratedBy string           `bson:"moderatedBy,omitempty" json:"moderatedBy,omitempty"`
	ModeratedAt *time.Time       `bson:"moderatedAt,omitempty" json:"moderatedAt,omitempty"`
}

// Review is one customer's feedback on one completed booking. Exactly one
// review may exist per booking.
type Review struct {
	ID             string          `bson:"id" json:"id"`
	UserID         string          `bson:"userId" json:"userId"`
	ProviderID     string          `bson:"providerId" json:"providerId"` // denormalized from the booking
	BookingID      string          `bson:"bookingId" json:"bookingId"`
	Rating         int             `bson:"rating" json:"rating"` // 1..5
	Title          string          `bson:"title,omitempty" json:"title,omitempty"`
	Comment        string          `bson:"comment,omitempty" json:"comment,omitempty"`
	DetailedRating *DetailedRating `bson:"detailedRating,omitempty" json:"detailedRating,omitempty"`
	Moderation     Moderation      `bson:"moderation" json:"moderation"`
	IsVerified     bool            `bson:"isVerified" json:"isVerified"` // verified booking = verified review
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}
