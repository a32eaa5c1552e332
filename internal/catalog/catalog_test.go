package catalog

import (
	"testing"

	"freshpick/internal/models"
)

func TestSearchIsCaseInsensitive(t *testing.T) {
	upper := Search("APPLE")
	lower := Search("apple")

	if len(upper) == 0 {
		t.Fatal("expected at least one match for APPLE")
	}
	if len(upper) != len(lower) {
		t.Fatalf("case changed result count: %d vs %d", len(upper), len(lower))
	}
	if upper[0].Name != "Fuji Apple" {
		t.Fatalf("expected Fuji Apple first, got %s", upper[0].Name)
	}
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	if got, want := len(Search("")), len(Products()); got != want {
		t.Fatalf("empty query returned %d products, want %d", got, want)
	}
}

func TestByIDRoundTrip(t *testing.T) {
	for _, p := range Products() {
		found, ok := ByID(p.ID)
		if !ok {
			t.Fatalf("product %s not found by its own id", p.Name)
		}
		if found.Name != p.Name || found.Price != p.Price {
			t.Fatalf("lookup mismatch for %s: got %+v", p.Name, found)
		}
	}
}

func TestProductIDsAreStable(t *testing.T) {
	// Ids are derived from names; two reads of the catalog must agree.
	a := Products()
	b := Products()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("id for %s changed between reads", a[i].Name)
		}
	}
}

func TestByCategory(t *testing.T) {
	fruits := ByCategory(models.CategoryFruits)
	if len(fruits) != 4 {
		t.Fatalf("expected 4 fruits, got %d", len(fruits))
	}
	for _, p := range fruits {
		if p.Category != models.CategoryFruits {
			t.Fatalf("product %s leaked into fruits", p.Name)
		}
	}
}

func TestCategoriesArePopulatedAndOrdered(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("expected at least one category")
	}
	if cats[0] != models.CategoryFruits {
		t.Fatalf("expected Fruits first, got %s", cats[0])
	}
	seen := make(map[models.Category]bool)
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %s", c)
		}
		seen[c] = true
		if len(ByCategory(c)) == 0 {
			t.Fatalf("category %s has no products", c)
		}
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	a := Products()
	a[0].Price = 999
	b := Products()
	if b[0].Price == 999 {
		t.Fatal("mutating the returned slice leaked into the catalog")
	}
}
