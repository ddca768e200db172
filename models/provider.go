package models

import "time"

// Category is the fixed enumeration of home-service categories.
type Category string

const (
	CategoryPlumber      Category = "plumber"
	CategoryElectrician  Category = "electrician"
	CategoryCleaner      Category = "cleaner"
	CategoryCarpenter    Category = "carpenter"
	CategoryPainter      Category = "painter"
	CategoryMechanic     Category = "mechanic"
	CategoryGardener     Category = "gardener"
	CategoryApplianceRep Category = "appliance-repair"
	CategoryPestControl  Category = "pest-control"
	CategoryACRepair     Category = "ac-repair"
	CategoryHomeSecurity Category = "home-security"
	CategoryOther        Category = "other"
)

var validCategories = map[Category]struct{}{
	CategoryPlumber: {}, CategoryElectrician: {}, CategoryCleaner: {},
	CategoryCarpenter: {}, CategoryPainter: {}, CategoryMechanic: {},
	CategoryGardener: {}, CategoryApplianceRep: {}, CategoryPestControl: {},
	CategoryACRepair: {}, CategoryHomeSecurity: {}, CategoryOther: {},
}

// IsValid reports whether the category is part of the fixed enumeration.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// PricingType describes how a provider charges.
type PricingType string

const (
	PricingHourly PricingType = "hourly"
	PricingFixed  PricingType = "fixed"
	PricingBoth   PricingType = "both"
)

type FixedRate struct {
	Service     string  `bson:"service" json:"service"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

type ProviderPricing struct {
	Type       PricingType `bson:"type" json:"type"`
	HourlyRate float64     `bson:"hourlyRate" json:"hourlyRate"`
	FixedRates []FixedRate `bson:"fixedRates,omitempty" json:"fixedRates,omitempty"`
	Currency   string      `bson:"currency" json:"currency"`
}

// ServiceArea is a geo-point plus radius (or a free-text area name)
// describing where a provider operates.
type ServiceArea struct {
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	RadiusKm float64   `bson:"radiusKm" json:"radiusKm"`
	AreaName string    `bson:"areaName,omitempty" json:"areaName,omitempty"`
}

type WorkingDay struct {
	Day         string `bson:"day" json:"day"` // monday..sunday
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

type Availability struct {
	WorkingDays        []WorkingDay `bson:"workingDays,omitempty" json:"workingDays,omitempty"`
	TimeSlotDuration   int          `bson:"timeSlotDuration" json:"timeSlotDuration"` // minutes
	AdvanceBookingDays int          `bson:"advanceBookingDays" json:"advanceBookingDays"`
}

// Rating is the rolling summary of approved reviews for a provider.
type Rating struct {
	Average float64 `bson:"average" json:"average"` // 0..5, one decimal
	Count   int     `bson:"count" json:"count"`
}

type ProviderStats struct {
	TotalBookings     int       `bson:"totalBookings" json:"totalBookings"`
	CompletedBookings int       `bson:"completedBookings" json:"completedBookings"`
	CancelledBookings int       `bson:"cancelledBookings" json:"cancelledBookings"`
	TotalEarnings     float64   `bson:"totalEarnings" json:"totalEarnings"`
	JoinedDate        time.Time `bson:"joinedDate" json:"joinedDate"`
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationInReview VerificationStatus = "in-review"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Provider represents a service-offering business, owned 1:1 by a user.
type Provider struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	BusinessName       string             `bson:"businessName" json:"businessName"`
	Description        string             `bson:"description" json:"description"`
	Categories         []Category         `bson:"categories" json:"categories"`
	Skills             []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Pricing            ProviderPricing    `bson:"pricing" json:"pricing"`
	ServiceAreas       []ServiceArea      `bson:"serviceAreas" json:"serviceAreas"`
	Availability       Availability       `bson:"availability" json:"availability"`
	Photos             []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	Rating             Rating             `bson:"rating" json:"rating"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	Stats              ProviderStats      `bson:"stats" json:"stats"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Populated by geospatial search only: distance from the query point.
	Distance   float64  `bson:"distance,omitempty" json:"-"`
	DistanceKm *float64 `bson:"-" json:"distanceKm,omitempty"`
}

// FirstCategory returns the provider's primary category, falling back to
// "other" for providers registered without one.
func (p *Provider) FirstCategory() Category {
	if len(p.Categories) > 0 {
		return p.Categories[0]
	}
	return CategoryOther
}
