package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillableHours(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     int
	}{
		{"zero bills one hour", 0, 1},
		{"negative bills one hour", -30, 1},
		{"half hour rounds up", 30, 1},
		{"exact hour", 60, 1},
		{"partial second hour rounds up", 61, 2},
		{"ninety minutes", 90, 2},
		{"two hours", 120, 2},
		{"three and a bit", 150, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillableHours(tt.duration))
		})
	}
}

func TestQuote(t *testing.T) {
	p := Quote(500, 90)
	assert.Equal(t, 1000.0, p.ServiceCharge)
	assert.Equal(t, 100.0, p.PlatformFee)
	assert.Equal(t, 180.0, p.Taxes)
	assert.Equal(t, 0.0, p.Discount)
	assert.Equal(t, 1280.0, p.TotalAmount)
	assert.Equal(t, "INR", p.Currency)
}

func TestQuoteRoundsFeeAndTaxes(t *testing.T) {
	// 333 * 1h: fee 33.3 -> 33, taxes 59.94 -> 60.
	p := Quote(333, 60)
	assert.Equal(t, 333.0, p.ServiceCharge)
	assert.Equal(t, 33.0, p.PlatformFee)
	assert.Equal(t, 60.0, p.Taxes)
	assert.Equal(t, 426.0, p.TotalAmount)
}

func TestZeroPricing(t *testing.T) {
	p := ZeroPricing()
	assert.Zero(t, p.ServiceCharge)
	assert.Zero(t, p.TotalAmount)
	assert.Equal(t, "INR", p.Currency)
}
