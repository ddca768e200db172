package models

import "time"

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no-show"
)

// BookingAction is the closed set of transition actions on a booking.
type BookingAction string

const (
	ActionAccept   BookingAction = "accept"
	ActionDecline  BookingAction = "decline"
	ActionStart    BookingAction = "start"
	ActionComplete BookingAction = "complete"
	ActionCancel   BookingAction = "cancel"
	ActionNoShow   BookingAction = "no-show"
)

// PaymentMethod is how the customer intends to settle. Only COD is
// functionally wired; the others are recorded verbatim.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentWallet PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type ServiceLocation struct {
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	State       string    `bson:"state" json:"state"`
	Pincode     string    `bson:"pincode" json:"pincode"`
	Coordinates *GeoPoint `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Landmark    string    `bson:"landmark,omitempty" json:"landmark,omitempty"`
}

type BookingPricing struct {
	ServiceCharge float64 `bson:"serviceCharge" json:"serviceCharge"`
	PlatformFee   float64 `bson:"platformFee" json:"platformFee"`
	Taxes         float64 `bson:"taxes" json:"taxes"`
	Discount      float64 `bson:"discount" json:"discount"`
	TotalAmount   float64 `bson:"totalAmount" json:"totalAmount"`
	Currency      string  `bson:"currency" json:"currency"`
}

type Payment struct {
	Method    PaymentMethod `bson:"method" json:"method"`
	Status    PaymentStatus `bson:"status" json:"status"`
	CODAmount float64       `bson:"codAmount,omitempty" json:"codAmount,omitempty"`
	PaidAt    *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// TimelineEntry is one row of the append-only status audit trail.
type TimelineEntry struct {
	Status    BookingStatus `bson:"status" json:"status"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
	UpdatedBy string        `bson:"updatedBy" json:"updatedBy"` // userID of the actor
	Notes     string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Cancellation struct {
	CancelledBy string    `bson:"cancelledBy" json:"cancelledBy"`
	CancelledAt time.Time `bson:"cancelledAt" json:"cancelledAt"`
	Reason      string    `bson:"reason" json:"reason"`
}

type Completion struct {
	CompletedAt     time.Time `bson:"completedAt" json:"completedAt"`
	WorkDescription string    `bson:"workDescription" json:"workDescription"`
}

// Booking represents one engagement between a customer and a provider.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	BookingID   string `bson:"bookingId" json:"bookingId"` // human-readable token, e.g. BK17251...X4QZ
	UserID      string `bson:"userId" json:"userId"`       // customer identity
	ProviderID  string `bson:"providerId" json:"providerId"`
	ServiceType string `bson:"serviceType" json:"serviceType"` // "on-site" or "inquiry"

	Category    Category `bson:"category" json:"category"`
	Description string   `bson:"description" json:"description"`

	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime string    `bson:"scheduledTime" json:"scheduledTime"` // "14:30"
	Duration      int       `bson:"duration" json:"duration"`           // minutes

	ServiceLocation ServiceLocation `bson:"serviceLocation" json:"serviceLocation"`
	Pricing         BookingPricing  `bson:"pricing" json:"pricing"`
	Payment         Payment         `bson:"payment" json:"payment"`

	Status   BookingStatus   `bson:"status" json:"status"`
	Timeline []TimelineEntry `bson:"timeline" json:"timeline"`

	Cancellation *Cancellation `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Completion   *Completion   `bson:"completion,omitempty" json:"completion,omitempty"`
	HasReview    bool          `bson:"hasReview" json:"hasReview"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
