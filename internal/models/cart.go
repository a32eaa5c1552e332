package models

import "github.com/google/uuid"

// CartItem is a live cart line. Quantity is always >= 1; a line whose
// quantity would drop to zero is removed instead.
type CartItem struct {
	ID       uuid.UUID `json:"id"`
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
}
