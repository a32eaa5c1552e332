package store

import (
	"time"

	"github.com/google/uuid"

	"freshpick/internal/models"
)

// Bundles returns the saved bundles in the order they were created.
func (s *Store) Bundles() []models.SavedBundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundleListLocked()
}

// BundleByID looks a bundle up by id.
func (s *Store) BundleByID(id uuid.UUID) (models.SavedBundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bundles[id]
	if !ok {
		return models.SavedBundle{}, false
	}
	out := *b
	out.Items = append([]models.BundleItem(nil), b.Items...)
	return out, true
}

// CreateBundleFromCart snapshots the current cart lines into a new named
// bundle. An empty cart is a no-op.
func (s *Store) CreateBundleFromCart(name string) (models.SavedBundle, bool) {
	s.mu.Lock()

	if len(s.cartOrder) == 0 {
		s.mu.Unlock()
		return models.SavedBundle{}, false
	}

	items := make([]models.BundleItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		line := s.cart[id]
		items = append(items, models.BundleItem{
			ID:       uuid.New(),
			Product:  line.Product,
			Quantity: line.Quantity,
		})
	}

	bundle := s.appendBundleLocked(name, items)
	s.mu.Unlock()

	s.notify(CollectionBundles)
	return bundle, true
}

// CreateBundle saves a bundle from an explicit item selection, the manual
// path next to CreateBundleFromCart. No items is a no-op.
func (s *Store) CreateBundle(name string, items []models.BundleItem) (models.SavedBundle, bool) {
	if len(items) == 0 {
		return models.SavedBundle{}, false
	}

	copied := make([]models.BundleItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		copied = append(copied, item)
	}
	if len(copied) == 0 {
		return models.SavedBundle{}, false
	}

	s.mu.Lock()
	bundle := s.appendBundleLocked(name, copied)
	s.mu.Unlock()

	s.notify(CollectionBundles)
	return bundle, true
}

func (s *Store) appendBundleLocked(name string, items []models.BundleItem) models.SavedBundle {
	bundle := &models.SavedBundle{
		ID:        uuid.New(),
		Name:      name,
		Items:     items,
		CreatedAt: time.Now(),
	}
	s.bundles[bundle.ID] = bundle
	s.bundleOrder = append(s.bundleOrder, bundle.ID)
	s.persistBundlesLocked()

	out := *bundle
	out.Items = append([]models.BundleItem(nil), bundle.Items...)
	return out
}

// AddBundleToCart merges a bundle's items into the cart, line by line.
// Existing lines for the same products gain quantity rather than
// duplicating. An unknown id is a no-op.
func (s *Store) AddBundleToCart(bundleID uuid.UUID) bool {
	s.mu.Lock()
	bundle, ok := s.bundles[bundleID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	for _, item := range bundle.Items {
		s.addToCartLocked(item.Product, item.Quantity)
	}
	s.mu.Unlock()

	s.notify(CollectionCart)
	return true
}

// UpdateBundle replaces a bundle's name and items in place, keeping its
// position and creation time. An unknown id is a no-op.
func (s *Store) UpdateBundle(bundleID uuid.UUID, newName string, newItems []models.BundleItem) bool {
	s.mu.Lock()
	bundle, ok := s.bundles[bundleID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	items := make([]models.BundleItem, 0, len(newItems))
	for _, item := range newItems {
		if item.Quantity <= 0 {
			continue
		}
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		items = append(items, item)
	}

	bundle.Name = newName
	bundle.Items = items
	s.persistBundlesLocked()
	s.mu.Unlock()

	s.notify(CollectionBundles)
	return true
}

// DeleteBundle removes a bundle. An unknown id is a no-op.
func (s *Store) DeleteBundle(bundleID uuid.UUID) bool {
	s.mu.Lock()
	if _, ok := s.bundles[bundleID]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.bundles, bundleID)
	for i, id := range s.bundleOrder {
		if id == bundleID {
			s.bundleOrder = append(s.bundleOrder[:i], s.bundleOrder[i+1:]...)
			break
		}
	}
	s.persistBundlesLocked()
	s.mu.Unlock()

	s.notify(CollectionBundles)
	return true
}
