package models

import (
	"time"

	"github.com/google/uuid"
)

// BundleItem is a product/quantity pair inside a saved bundle. Same shape
// as a cart line, but it is a template, not something being bought.
type BundleItem struct {
	ID       uuid.UUID `json:"id"`
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
}

// SavedBundle is a named, reusable shopping list persisted across sessions.
type SavedBundle struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Items     []BundleItem `json:"items"`
	CreatedAt time.Time    `json:"createdAt"`
}
