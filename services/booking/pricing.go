package booking

import (
	"math"

	"urbanfix/models"
)

const (
	platformFeeRate = 0.10
	taxRate         = 0.18
	defaultCurrency = "INR"
)

// BillableHours returns the number of whole hours charged for a duration in
// minutes. Partial hours round up and every booking bills at least one hour.
func BillableHours(durationMinutes int) int {
	hours := int(math.Ceil(float64(durationMinutes) / 60.0))
	if hours < 1 {
		hours = 1
	}
	return hours
}

// Quote computes the derived pricing breakdown for a quick-book request:
// serviceCharge = hourlyRate * billable hours, platform fee 10%, taxes 18%,
// discount zero at creation.
func Quote(hourlyRate float64, durationMinutes int) models.BookingPricing {
	serviceCharge := hourlyRate * float64(BillableHours(durationMinutes))
	platformFee := math.Round(serviceCharge * platformFeeRate)
	taxes := math.Round(serviceCharge * taxRate)
	return models.BookingPricing{
		ServiceCharge: serviceCharge,
		PlatformFee:   platformFee,
		Taxes:         taxes,
		Discount:      0,
		TotalAmount:   serviceCharge + platformFee + taxes,
		Currency:      defaultCurrency,
	}
}

// ZeroPricing is the all-zero breakdown used by inquiry placeholder bookings.
func ZeroPricing() models.BookingPricing {
	return models.BookingPricing{Currency: defaultCurrency}
}
