package pricing

import (
	"math"

	"freshpick/internal/models"
)

// Fee constants. smallOrderThreshold is the subtotal below which the
// small-order surcharge applies.
const (
	serviceFee          = 2.50
	deliveryFee         = 5.99
	smallOrderFee       = 1.99
	smallOrderThreshold = 15.00
)

// Breakdown is the full price composition for a checkout. Values are full
// precision; round at display time only.
type Breakdown struct {
	ItemsTotal    float64 `json:"itemsTotal"`
	DeliveryFee   float64 `json:"deliveryFee"`
	ServiceFee    float64 `json:"serviceFee"`
	SmallOrderFee float64 `json:"smallOrderFee"`
	Tax           float64 `json:"tax"`
	Tip           float64 `json:"tip"`
	GrandTotal    float64 `json:"grandTotal"`
}

// Calculate turns a cart subtotal and checkout options into a fee/tax/tip
// breakdown. Pure function, no side effects. A negative itemsTotal is
// treated as 0, which zeroes every fee as well.
func Calculate(itemsTotal float64, fulfillment models.FulfillmentMethod, tipPercent, taxRate float64) Breakdown {
	if itemsTotal < 0 {
		itemsTotal = 0
	}

	b := Breakdown{ItemsTotal: itemsTotal}

	// An empty cart prices to zero across the board, delivery included.
	if itemsTotal > 0 {
		b.ServiceFee = serviceFee
		if fulfillment == models.FulfillmentDelivery {
			b.DeliveryFee = deliveryFee
		}
		if itemsTotal < smallOrderThreshold {
			b.SmallOrderFee = smallOrderFee
		}
	}

	b.Tax = taxRate * itemsTotal
	b.Tip = tipPercent * itemsTotal
	b.GrandTotal = itemsTotal + b.DeliveryFee + b.ServiceFee + b.SmallOrderFee + b.Tax + b.Tip

	return b
}

// Round2 rounds a monetary value to cents for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
