package store

import (
	"time"

	"github.com/google/uuid"

	"freshpick/internal/models"
	"freshpick/internal/pricing"
)

// Orders returns the order history, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderListLocked()
}

// OrderByID looks an order up by id.
func (s *Store) OrderByID(id uuid.UUID) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	out := *o
	out.Items = append([]models.OrderItem(nil), o.Items...)
	return out, true
}

// PlaceOrder turns the cart into a new order. Every cart line is
// snapshotted with its current product price as the frozen price, the
// breakdown's values are copied onto the order, the cart is emptied, and
// the status simulation starts. An empty cart is a no-op.
func (s *Store) PlaceOrder(pickupTime time.Time, storeLocation string, fulfillment models.FulfillmentMethod, breakdown pricing.Breakdown) (models.Order, bool) {
	s.mu.Lock()

	if len(s.cartOrder) == 0 {
		s.mu.Unlock()
		return models.Order{}, false
	}

	items := make([]models.OrderItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		line := s.cart[id]
		items = append(items, models.OrderItem{
			ID:          uuid.New(),
			Product:     line.Product,
			Quantity:    line.Quantity,
			FrozenPrice: line.Product.Price,
		})
	}

	order := &models.Order{
		ID:            uuid.New(),
		UserName:      s.shopper.Name,
		StoreLocation: storeLocation,
		Fulfillment:   fulfillment,
		PickupTime:    pickupTime,
		Date:          time.Now(),
		Status:        models.StatusProcessing,
		ItemsTotal:    breakdown.ItemsTotal,
		DeliveryFee:   breakdown.DeliveryFee,
		ServiceFee:    breakdown.ServiceFee,
		SmallOrderFee: breakdown.SmallOrderFee,
		Tax:           breakdown.Tax,
		Tip:           breakdown.Tip,
		GrandTotal:    breakdown.GrandTotal,
		Items:         items,
	}

	s.orders[order.ID] = order
	s.orderOrder = append([]uuid.UUID{order.ID}, s.orderOrder...)
	s.clearCartLocked()
	s.persistOrdersLocked()

	out := *order
	out.Items = append([]models.OrderItem(nil), order.Items...)
	s.mu.Unlock()

	s.notify(CollectionCart, CollectionOrders)
	s.scheduleStatus(order.ID)

	return out, true
}

// CompleteOrder marks a ready order as picked up. Orders in any other
// state are left alone.
func (s *Store) CompleteOrder(orderID uuid.UUID) bool {
	s.mu.Lock()
	o, ok := s.orders[orderID]
	if !ok || o.Status != models.StatusReady {
		s.mu.Unlock()
		return false
	}
	o.Status = models.StatusCompleted
	s.persistOrdersLocked()
	s.mu.Unlock()

	s.notify(CollectionOrders)
	return true
}

// DeleteOrder removes an order from the history. Pending scheduled
// transitions for it become no-ops. An unknown id is a no-op.
func (s *Store) DeleteOrder(orderID uuid.UUID) bool {
	s.mu.Lock()
	if _, ok := s.orders[orderID]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.orders, orderID)
	for i, id := range s.orderOrder {
		if id == orderID {
			s.orderOrder = append(s.orderOrder[:i], s.orderOrder[i+1:]...)
			break
		}
	}
	s.persistOrdersLocked()
	s.mu.Unlock()

	s.notify(CollectionOrders)
	return true
}
