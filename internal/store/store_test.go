package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"freshpick/internal/models"
	"freshpick/internal/pricing"
)

// newTestStore uses delays far beyond any test's lifetime so scheduled
// transitions never interleave with the behavior under test. Scheduler
// tests build their own short-delay stores.
func newTestStore() *Store {
	return New(Options{
		PackingDelay: time.Hour,
		ReadyDelay:   time.Hour,
	})
}

func testProduct(name string, price float64) models.Product {
	return models.Product{
		ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("test."+name)),
		Name:     name,
		Category: models.CategoryFruits,
		Price:    price,
	}
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	s := newTestStore()
	apple := testProduct("Fuji Apple", 0.89)

	s.AddToCart(apple, 2)
	s.AddToCart(apple, 3)

	items := s.CartItems()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddToCartNonPositiveQuantityIsNoOp(t *testing.T) {
	s := newTestStore()

	s.AddToCart(testProduct("Milk", 3.29), 0)
	s.AddToCart(testProduct("Milk", 3.29), -2)

	if got := len(s.CartItems()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestCartTotalRecomputedOnRead(t *testing.T) {
	s := newTestStore()
	apple := testProduct("Fuji Apple", 0.89)

	s.AddToCart(apple, 2)
	if got := s.CartTotal(); got != 1.78 {
		t.Fatalf("cart total: got %v want 1.78", got)
	}

	s.AddToCart(testProduct("Milk", 3.29), 1)
	if got := s.CartTotal(); got != 1.78+3.29 {
		t.Fatalf("cart total after second add: got %v", got)
	}
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 2)

	id := s.CartItems()[0].ID
	s.UpdateQuantity(id, 0)

	if got := len(s.CartItems()); got != 0 {
		t.Fatalf("expected line removed, got %d lines", got)
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 2)

	s.UpdateQuantity(uuid.New(), 7)

	items := s.CartItems()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected cart state: %+v", items)
	}
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 1)
	s.AddToCart(testProduct("Eggs", 4.19), 1)

	items := s.CartItems()
	s.RemoveFromCart(items[0].ID)

	remaining := s.CartItems()
	if len(remaining) != 1 || remaining[0].Product.Name != "Eggs" {
		t.Fatalf("unexpected cart after removal: %+v", remaining)
	}
}

func TestBundleRoundTripRestoresCart(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 2)
	s.AddToCart(testProduct("Eggs", 4.19), 1)
	s.AddToCart(testProduct("Bread", 2.99), 3)

	bundle, ok := s.CreateBundleFromCart("Breakfast")
	if !ok {
		t.Fatal("expected bundle to be created")
	}

	s.ClearCart()
	if len(s.CartItems()) != 0 {
		t.Fatal("cart should be empty before restore")
	}

	if !s.AddBundleToCart(bundle.ID) {
		t.Fatal("expected bundle add to succeed")
	}

	items := s.CartItems()
	if len(items) != 3 {
		t.Fatalf("expected 3 restored lines, got %d", len(items))
	}
	want := map[string]int{"Milk": 2, "Eggs": 1, "Bread": 3}
	for _, item := range items {
		if want[item.Product.Name] != item.Quantity {
			t.Fatalf("line %s has quantity %d, want %d", item.Product.Name, item.Quantity, want[item.Product.Name])
		}
	}
}

func TestAddBundleMergesIntoExistingCart(t *testing.T) {
	s := newTestStore()
	milk := testProduct("Milk", 3.29)

	s.AddToCart(milk, 1)
	bundle, _ := s.CreateBundleFromCart("Just Milk")
	s.AddBundleToCart(bundle.ID)

	items := s.CartItems()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected merged milk line with quantity 2, got %+v", items)
	}
}

func TestCreateBundleFromEmptyCartIsNoOp(t *testing.T) {
	s := newTestStore()

	if _, ok := s.CreateBundleFromCart("Nothing"); ok {
		t.Fatal("expected no bundle from empty cart")
	}
	if got := len(s.Bundles()); got != 0 {
		t.Fatalf("expected no bundles, got %d", got)
	}
}

func TestUpdateBundleUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	if s.UpdateBundle(uuid.New(), "Ghost", nil) {
		t.Fatal("expected update of unknown bundle to be a no-op")
	}
}

func TestUpdateBundleReplacesInPlace(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 1)
	first, _ := s.CreateBundleFromCart("First")
	s.AddToCart(testProduct("Eggs", 4.19), 1)
	_, _ = s.CreateBundleFromCart("Second")

	newItems := []models.BundleItem{{Product: testProduct("Bread", 2.99), Quantity: 4}}
	if !s.UpdateBundle(first.ID, "Renamed", newItems) {
		t.Fatal("expected update to succeed")
	}

	bundles := s.Bundles()
	if len(bundles) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(bundles))
	}
	// Position and creation time survive the edit.
	if bundles[0].ID != first.ID || bundles[0].Name != "Renamed" {
		t.Fatalf("expected renamed bundle first, got %+v", bundles[0])
	}
	if !bundles[0].CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected CreatedAt to be preserved")
	}
	if len(bundles[0].Items) != 1 || bundles[0].Items[0].Quantity != 4 {
		t.Fatalf("expected replaced items, got %+v", bundles[0].Items)
	}
}

func TestDeleteBundle(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 1)
	bundle, _ := s.CreateBundleFromCart("Doomed")

	if !s.DeleteBundle(bundle.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.DeleteBundle(bundle.ID) {
		t.Fatal("second delete should be a no-op")
	}
	if got := len(s.Bundles()); got != 0 {
		t.Fatalf("expected no bundles, got %d", got)
	}
}

func placeTestOrder(t *testing.T, s *Store) models.Order {
	t.Helper()
	breakdown := pricing.Calculate(s.CartTotal(), models.FulfillmentPickup, 0, 0.08)
	order, ok := s.PlaceOrder(time.Now().Add(time.Hour), "FreshPick Downtown", models.FulfillmentPickup, breakdown)
	if !ok {
		t.Fatal("expected order to be placed")
	}
	return order
}

func TestPlaceOrderEmptyCartIsNoOp(t *testing.T) {
	s := newTestStore()
	_, ok := s.PlaceOrder(time.Now(), "FreshPick Downtown", models.FulfillmentPickup, pricing.Breakdown{})
	if ok {
		t.Fatal("expected empty-cart order to be rejected")
	}
	if got := len(s.Orders()); got != 0 {
		t.Fatalf("expected no orders, got %d", got)
	}
}

func TestPlaceOrderSnapshotsAndClearsCart(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Fuji Apple", 0.89), 2)

	order := placeTestOrder(t, s)

	if len(s.CartItems()) != 0 {
		t.Fatal("cart should be empty after placing an order")
	}
	if order.Status != models.StatusProcessing {
		t.Fatalf("new order should be processing, got %s", order.Status)
	}
	if order.UserName != models.DefaultShopper.Name {
		t.Fatalf("order should carry the shopper name, got %q", order.UserName)
	}
	if len(order.Items) != 1 || order.Items[0].FrozenPrice != 0.89 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
	if order.ItemsTotal != 1.78 || order.ServiceFee != 2.50 || order.SmallOrderFee != 1.99 {
		t.Fatalf("unexpected breakdown on order: %+v", order)
	}
}

func TestFrozenPriceSurvivesCatalogPriceChange(t *testing.T) {
	s := newTestStore()
	apple := testProduct("Fuji Apple", 0.89)
	s.AddToCart(apple, 2)

	order := placeTestOrder(t, s)

	// The catalog-side price moves; the placed order must not.
	apple.Price = 9.99
	s.AddToCart(apple, 1)

	got, ok := s.OrderByID(order.ID)
	if !ok {
		t.Fatal("order disappeared")
	}
	if got.Items[0].FrozenPrice != 0.89 {
		t.Fatalf("frozen price changed to %v", got.Items[0].FrozenPrice)
	}
}

func TestOrdersAreNewestFirst(t *testing.T) {
	s := newTestStore()

	s.AddToCart(testProduct("Milk", 3.29), 1)
	first := placeTestOrder(t, s)

	s.AddToCart(testProduct("Eggs", 4.19), 1)
	second := placeTestOrder(t, s)

	orders := s.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatal("expected most recent order first")
	}
}

func TestCompleteOrderRequiresReady(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 1)
	order := placeTestOrder(t, s)

	if s.CompleteOrder(order.ID) {
		t.Fatal("completing a processing order should fail")
	}

	s.advanceStatus(order.ID, models.StatusPacking)
	s.advanceStatus(order.ID, models.StatusReady)

	if !s.CompleteOrder(order.ID) {
		t.Fatal("completing a ready order should succeed")
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}

	if s.CompleteOrder(order.ID) {
		t.Fatal("completed is terminal")
	}
}

func TestDeleteOrder(t *testing.T) {
	s := newTestStore()
	s.AddToCart(testProduct("Milk", 3.29), 1)
	order := placeTestOrder(t, s)

	if !s.DeleteOrder(order.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.DeleteOrder(order.ID) {
		t.Fatal("second delete should be a no-op")
	}
	if _, ok := s.OrderByID(order.ID); ok {
		t.Fatal("order should be gone")
	}
}

func TestSubscribeSeesChanges(t *testing.T) {
	s := newTestStore()

	changes := make(map[Collection]int)
	s.Subscribe(func(c Collection) { changes[c]++ })

	s.AddToCart(testProduct("Milk", 3.29), 1)
	if changes[CollectionCart] != 1 {
		t.Fatalf("expected one cart notification, got %d", changes[CollectionCart])
	}

	placeTestOrder(t, s)
	if changes[CollectionCart] != 2 || changes[CollectionOrders] != 1 {
		t.Fatalf("expected cart+order notifications after checkout, got %+v", changes)
	}
}

type failingPersister struct{}

func (failingPersister) SaveBundles([]models.SavedBundle) error { return errors.New("disk full") }
func (failingPersister) SaveOrders([]models.Order) error        { return errors.New("disk full") }

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	s := New(Options{DB: failingPersister{}})
	s.AddToCart(testProduct("Milk", 3.29), 1)

	// Both writes fail; in-memory state must stay authoritative.
	if _, ok := s.CreateBundleFromCart("Still Here"); !ok {
		t.Fatal("bundle creation should succeed despite save failure")
	}
	order := placeTestOrder(t, s)

	if got := len(s.Bundles()); got != 1 {
		t.Fatalf("expected bundle in memory, got %d", got)
	}
	if _, ok := s.OrderByID(order.ID); !ok {
		t.Fatal("expected order in memory")
	}
}

func TestSeedStarterBundlesOnlyWhenEmpty(t *testing.T) {
	s := newTestStore()
	s.SeedStarterBundles()

	bundles := s.Bundles()
	if len(bundles) != 3 {
		t.Fatalf("expected 3 starter bundles, got %d", len(bundles))
	}
	if bundles[0].Name != "Study Snacks" || bundles[2].Name != "Taco Night" {
		t.Fatalf("unexpected starter bundles: %+v", bundles)
	}

	s.SeedStarterBundles()
	if got := len(s.Bundles()); got != 3 {
		t.Fatalf("seeding twice should not duplicate, got %d", got)
	}
}
