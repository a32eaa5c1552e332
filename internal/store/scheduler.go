package store

import (
	"time"

	"github.com/google/uuid"

	"freshpick/internal/models"
)

// scheduleStatus arms the two one-shot transitions for a freshly placed
// order: processing -> packing after the packing delay, then packing ->
// ready after the further ready delay. The callbacks close over the order
// id only; if the order is gone or already past the target state by the
// time a timer fires, nothing happens.
func (s *Store) scheduleStatus(orderID uuid.UUID) {
	time.AfterFunc(s.packingDelay, func() {
		s.advanceStatus(orderID, models.StatusPacking)
	})
	time.AfterFunc(s.packingDelay+s.readyDelay, func() {
		s.advanceStatus(orderID, models.StatusReady)
	})
}

// advanceStatus applies a scheduled transition. Progression is strictly
// forward: an order that already reached or passed the target status is
// left untouched, so a late or duplicate timer is harmless.
func (s *Store) advanceStatus(orderID uuid.UUID, next models.OrderStatus) {
	s.mu.Lock()
	o, ok := s.orders[orderID]
	if !ok || !o.Status.Before(next) {
		s.mu.Unlock()
		return
	}
	o.Status = next
	s.persistOrdersLocked()
	s.mu.Unlock()

	s.notify(CollectionOrders)
}
