// Package store owns the cart, the saved bundles, and the order history.
// It is the single writer for all three collections: every mutation takes
// the store lock, so user actions and scheduled status transitions never
// interleave mid-update.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"freshpick/internal/models"
)

// Collection identifies which of the store's collections changed in a
// change notification.
type Collection int

const (
	CollectionCart Collection = iota
	CollectionBundles
	CollectionOrders
)

// Persister saves the two durable collections. Writes are best-effort:
// the store logs failures and keeps serving from memory.
type Persister interface {
	SaveBundles([]models.SavedBundle) error
	SaveOrders([]models.Order) error
}

// Options configures a Store. Zero-value delays fall back to the demo
// defaults; a nil DB disables persistence (used by tests).
type Options struct {
	DB           Persister
	Bundles      []models.SavedBundle
	Orders       []models.Order
	PackingDelay time.Duration
	ReadyDelay   time.Duration
	Shopper      models.Shopper
}

const (
	defaultPackingDelay = 5 * time.Second
	defaultReadyDelay   = 15 * time.Second
)

// Store is the state container behind the API. Collections are id-keyed
// maps plus explicit ordering slices: bundles keep insertion order,
// orders are newest first.
type Store struct {
	mu sync.Mutex

	cart      map[uuid.UUID]*models.CartItem
	cartOrder []uuid.UUID

	bundles     map[uuid.UUID]*models.SavedBundle
	bundleOrder []uuid.UUID

	orders     map[uuid.UUID]*models.Order
	orderOrder []uuid.UUID

	listeners []func(Collection)

	db           Persister
	packingDelay time.Duration
	readyDelay   time.Duration
	shopper      models.Shopper
}

// New builds a Store seeded with previously persisted bundles and orders.
// The order slice is expected newest-first, as persisted.
func New(opts Options) *Store {
	s := &Store{
		cart:         make(map[uuid.UUID]*models.CartItem),
		bundles:      make(map[uuid.UUID]*models.SavedBundle),
		orders:       make(map[uuid.UUID]*models.Order),
		db:           opts.DB,
		packingDelay: opts.PackingDelay,
		readyDelay:   opts.ReadyDelay,
		shopper:      opts.Shopper,
	}
	if s.packingDelay <= 0 {
		s.packingDelay = defaultPackingDelay
	}
	if s.readyDelay <= 0 {
		s.readyDelay = defaultReadyDelay
	}
	if s.shopper.Name == "" {
		s.shopper = models.DefaultShopper
	}

	for i := range opts.Bundles {
		b := opts.Bundles[i]
		s.bundles[b.ID] = &b
		s.bundleOrder = append(s.bundleOrder, b.ID)
	}
	for i := range opts.Orders {
		o := opts.Orders[i]
		s.orders[o.ID] = &o
		s.orderOrder = append(s.orderOrder, o.ID)
	}

	return s
}

// Subscribe registers a callback invoked after a collection changes. The
// callback runs outside the store lock, so it may call back into the
// store.
func (s *Store) Subscribe(fn func(Collection)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify(cols ...Collection) {
	s.mu.Lock()
	listeners := make([]func(Collection), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		for _, col := range cols {
			fn(col)
		}
	}
}

// persistBundlesLocked writes the bundle list, best effort. Caller holds
// the lock.
func (s *Store) persistBundlesLocked() {
	if s.db == nil {
		return
	}
	if err := s.db.SaveBundles(s.bundleListLocked()); err != nil {
		log.Printf("[STORE] bundle save failed, in-memory state stays authoritative: %v", err)
	}
}

// persistOrdersLocked writes the order history, best effort. Caller holds
// the lock.
func (s *Store) persistOrdersLocked() {
	if s.db == nil {
		return
	}
	if err := s.db.SaveOrders(s.orderListLocked()); err != nil {
		log.Printf("[STORE] order save failed, in-memory state stays authoritative: %v", err)
	}
}

func (s *Store) bundleListLocked() []models.SavedBundle {
	out := make([]models.SavedBundle, 0, len(s.bundleOrder))
	for _, id := range s.bundleOrder {
		b := *s.bundles[id]
		b.Items = append([]models.BundleItem(nil), b.Items...)
		out = append(out, b)
	}
	return out
}

func (s *Store) orderListLocked() []models.Order {
	out := make([]models.Order, 0, len(s.orderOrder))
	for _, id := range s.orderOrder {
		o := *s.orders[id]
		o.Items = append([]models.OrderItem(nil), o.Items...)
		out = append(out, o)
	}
	return out
}

// Shopper returns the profile stamped onto orders.
func (s *Store) Shopper() models.Shopper {
	return s.shopper
}
