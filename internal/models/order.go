package models

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentMethod selects how an order is handed over.
type FulfillmentMethod string

const (
	FulfillmentPickup   FulfillmentMethod = "pickup"
	FulfillmentDelivery FulfillmentMethod = "delivery"
)

// OrderStatus is the lifecycle state of an order. Progression is one-way:
// processing -> packing -> ready -> completed.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusPacking    OrderStatus = "packing"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
)

var statusRank = map[OrderStatus]int{
	StatusProcessing: 0,
	StatusPacking:    1,
	StatusReady:      2,
	StatusCompleted:  3,
}

// Before reports whether s comes strictly earlier than other in the
// lifecycle. Unknown statuses never advance anywhere.
func (s OrderStatus) Before(other OrderStatus) bool {
	a, okA := statusRank[s]
	b, okB := statusRank[other]
	return okA && okB && a < b
}

// OrderItem is a cart line snapshotted at placement time. FrozenPrice is
// the unit price the shopper actually paid; later catalog changes never
// touch it.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	Product     Product   `json:"product"`
	Quantity    int       `json:"quantity"`
	FrozenPrice float64   `json:"frozenPrice"`
}

// Order is created once at checkout. Only Status ever changes afterwards;
// the monetary fields are the price breakdown frozen at placement.
type Order struct {
	ID            uuid.UUID         `json:"id"`
	UserName      string            `json:"userName"`
	StoreLocation string            `json:"storeLocation"`
	Fulfillment   FulfillmentMethod `json:"fulfillment"`
	PickupTime    time.Time         `json:"pickupTime"`
	Date          time.Time         `json:"date"`
	Status        OrderStatus       `json:"status"`
	ItemsTotal    float64           `json:"itemsTotal"`
	DeliveryFee   float64           `json:"deliveryFee"`
	ServiceFee    float64           `json:"serviceFee"`
	SmallOrderFee float64           `json:"smallOrderFee"`
	Tax           float64           `json:"tax"`
	Tip           float64           `json:"tip"`
	GrandTotal    float64           `json:"grandTotal"`
	Items         []OrderItem       `json:"items"`
}
