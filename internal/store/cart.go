package store

import (
	"github.com/google/uuid"

	"freshpick/internal/models"
)

// AddToCart puts quantity units of a product in the cart. If the product
// already has a line, the quantities merge; a non-positive quantity is a
// no-op.
func (s *Store) AddToCart(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	s.addToCartLocked(product, quantity)
	s.mu.Unlock()

	s.notify(CollectionCart)
}

func (s *Store) addToCartLocked(product models.Product, quantity int) {
	for _, id := range s.cartOrder {
		if s.cart[id].Product.ID == product.ID {
			s.cart[id].Quantity += quantity
			return
		}
	}

	item := &models.CartItem{
		ID:       uuid.New(),
		Product:  product,
		Quantity: quantity,
	}
	s.cart[item.ID] = item
	s.cartOrder = append(s.cartOrder, item.ID)
}

// UpdateQuantity sets a cart line's quantity. Zero or less removes the
// line; an unknown id is a no-op.
func (s *Store) UpdateQuantity(cartItemID uuid.UUID, newQuantity int) {
	s.mu.Lock()
	item, ok := s.cart[cartItemID]
	if !ok {
		s.mu.Unlock()
		return
	}
	if newQuantity > 0 {
		item.Quantity = newQuantity
	} else {
		s.removeCartLineLocked(cartItemID)
	}
	s.mu.Unlock()

	s.notify(CollectionCart)
}

// RemoveFromCart deletes the given cart lines. Unknown ids are skipped.
func (s *Store) RemoveFromCart(cartItemIDs ...uuid.UUID) {
	s.mu.Lock()
	removed := false
	for _, id := range cartItemIDs {
		if _, ok := s.cart[id]; ok {
			s.removeCartLineLocked(id)
			removed = true
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(CollectionCart)
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	empty := len(s.cartOrder) == 0
	s.clearCartLocked()
	s.mu.Unlock()

	if !empty {
		s.notify(CollectionCart)
	}
}

func (s *Store) removeCartLineLocked(id uuid.UUID) {
	delete(s.cart, id)
	for i, existing := range s.cartOrder {
		if existing == id {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) clearCartLocked() {
	s.cart = make(map[uuid.UUID]*models.CartItem)
	s.cartOrder = nil
}

// CartItems returns the cart lines in the order they were added.
func (s *Store) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		out = append(out, *s.cart[id])
	}
	return out
}

// CartTotal is the sum of price x quantity over the cart, recomputed on
// every call.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, id := range s.cartOrder {
		item := s.cart[id]
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
