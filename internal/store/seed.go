package store

import (
	"time"

	"github.com/google/uuid"

	"freshpick/internal/catalog"
	"freshpick/internal/models"
)

// SeedStarterBundles installs the demo starter bundles. It only runs
// against an empty bundle collection, so a returning shopper's own
// bundles are never mixed with samples.
func (s *Store) SeedStarterBundles() {
	s.mu.Lock()
	if len(s.bundleOrder) > 0 {
		s.mu.Unlock()
		return
	}

	now := time.Now()
	seeds := []struct {
		name      string
		createdAt time.Time
		items     []seedItem
	}{
		{
			name:      "Study Snacks",
			createdAt: now.Add(-5 * 24 * time.Hour),
			items: []seedItem{
				{"Almonds", 2}, {"Apple", 3}, {"Yogurt", 4}, {"Chips", 2},
				{"Banana", 1}, {"Strawberries", 1}, {"Cheese", 1},
			},
		},
		{
			name:      "Weekly Essentials",
			createdAt: now.Add(-3 * 24 * time.Hour),
			items: []seedItem{
				{"Milk", 2}, {"Eggs", 2}, {"Bread", 2}, {"Spinach", 2},
				{"Chicken", 2}, {"Banana", 2}, {"Apple", 2}, {"Tomato", 2},
				{"Carrot", 2}, {"Broccoli", 2}, {"Cheese", 1}, {"Yogurt", 2},
				{"Oil", 1}, {"Rice", 1}, {"Pasta", 1}, {"Potato", 2},
				{"Bagels", 1}, {"Salmon", 1},
			},
		},
		{
			name:      "Taco Night",
			createdAt: now.Add(-24 * time.Hour),
			items: []seedItem{
				{"Beef", 1}, {"Cheese", 1}, {"Lemon", 2}, {"Tomato", 2},
				{"Spinach", 1}, {"Pepper", 2}, {"Yogurt", 1}, {"Chips", 1},
			},
		},
	}

	for _, seed := range seeds {
		items := make([]models.BundleItem, 0, len(seed.items))
		for _, si := range seed.items {
			product, ok := catalog.ByName(si.name)
			if !ok {
				continue
			}
			items = append(items, models.BundleItem{
				ID:       uuid.New(),
				Product:  product,
				Quantity: si.quantity,
			})
		}
		if len(items) == 0 {
			continue
		}
		bundle := &models.SavedBundle{
			ID:        uuid.New(),
			Name:      seed.name,
			Items:     items,
			CreatedAt: seed.createdAt,
		}
		s.bundles[bundle.ID] = bundle
		s.bundleOrder = append(s.bundleOrder, bundle.ID)
	}

	s.persistBundlesLocked()
	s.mu.Unlock()

	s.notify(CollectionBundles)
}

type seedItem struct {
	name     string
	quantity int
}
