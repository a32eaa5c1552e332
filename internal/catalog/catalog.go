// Package catalog holds the static product table. It is frozen for the
// lifetime of the process; the store and handlers only ever read it.
package catalog

import (
	"strings"

	"github.com/google/uuid"

	"freshpick/internal/models"
)

// Product ids are derived from the product name so they stay stable
// across restarts. Persisted bundles and orders reference them.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("freshpick.product"))

func newProduct(name, image string, category models.Category, description string, price float64) models.Product {
	return models.Product{
		ID:          uuid.NewSHA1(productNamespace, []byte(name)),
		Name:        name,
		Image:       image,
		Category:    category,
		Description: description,
		Price:       price,
	}
}

var products = []models.Product{
	newProduct("Fuji Apple", "apple", models.CategoryFruits, "Crisp and sweet Fuji apple, perfect for snacking.", 0.89),
	newProduct("Organic Bananas", "banana", models.CategoryFruits, "Sweet and creamy organic bananas. Price per bunch.", 0.69),
	newProduct("Fresh Lemon", "lemon", models.CategoryFruits, "Bright and zesty lemons, great for cooking or drinks.", 0.59),
	newProduct("Strawberries", "strawberry", models.CategoryFruits, "Fresh, juicy strawberries. 1lb container.", 3.49),

	newProduct("Broccoli", "broccoli", models.CategoryVegetables, "Fresh broccoli crowns, rich in vitamins.", 1.89),
	newProduct("Carrots", "carrot", models.CategoryVegetables, "Crunchy organic carrots, 1lb bag.", 1.49),
	newProduct("Cucumber", "cucumber", models.CategoryVegetables, "Cool and crisp cucumber, individually sold.", 0.99),
	newProduct("Red Bell Pepper", "pepper", models.CategoryVegetables, "Sweet and crunchy red bell pepper.", 1.29),
	newProduct("Russet Potato", "potato", models.CategoryVegetables, "Classic Russet potato, great for baking or frying.", 0.79),
	newProduct("Baby Spinach", "spinach", models.CategoryVegetables, "Pre-washed fresh baby spinach, 10oz bag.", 2.99),
	newProduct("Vine Tomato", "tomato", models.CategoryVegetables, "Ripe red tomatoes on the vine.", 0.89),

	newProduct("Bagels (4 Pack)", "bagels", models.CategoryBakery, "Freshly baked plain bagels.", 3.99),
	newProduct("Sliced Bread", "bread", models.CategoryBakery, "Whole wheat sliced bread loaf.", 2.99),
	newProduct("Butter Croissant", "croissant", models.CategoryBakery, "Flaky, buttery, authentic croissant.", 2.49),

	newProduct("Cheddar Cheese", "cheese", models.CategoryDairy, "Sharp cheddar cheese block, 8oz.", 4.49),
	newProduct("Large Brown Eggs", "eggs", models.CategoryDairy, "Farm fresh large brown eggs, dozen.", 4.19),
	newProduct("Whole Milk", "milk", models.CategoryDairy, "Gallon of fresh whole milk.", 3.29),
	newProduct("Fruit Yogurt", "yogurt", models.CategoryDairy, "Strawberry flavored greek yogurt cup.", 1.29),

	newProduct("Ground Beef", "beef", models.CategoryMeat, "Lean ground beef, 1lb pack.", 6.49),
	newProduct("Chicken Breast", "chicken", models.CategoryMeat, "Boneless skinless chicken breast, 1lb.", 5.99),
	newProduct("Salmon Fillet", "salmon", models.CategoryMeat, "Fresh Atlantic salmon fillet.", 10.99),

	newProduct("Cooking Oil", "oil", models.CategoryPantry, "Vegetable oil for cooking and frying.", 3.99),
	newProduct("Dried Pasta", "pasta", models.CategoryPantry, "Classic penne pasta, 16oz box.", 1.29),
	newProduct("White Rice", "rice", models.CategoryPantry, "Long grain white rice, 2lb bag.", 2.99),

	newProduct("Roasted Almonds", "almonds", models.CategorySnacks, "Salted roasted almonds, healthy snack.", 6.99),
	newProduct("Potato Chips", "chips", models.CategorySnacks, "Classic salted potato chips, party size.", 3.99),
}

var byID = func() map[uuid.UUID]models.Product {
	m := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}()

// Products returns the full catalog in display order.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks a product up by id.
func ByID(id uuid.UUID) (models.Product, bool) {
	p, ok := byID[id]
	return p, ok
}

// ByName finds the first product whose name contains the given text,
// ignoring case. Used for seeding starter bundles.
func ByName(name string) (models.Product, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.Product{}, false
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return models.Product{}, false
}

// Search returns products whose name contains the query, ignoring case.
// An empty query matches everything.
func Search(query string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return Products()
	}
	out := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns the products in one department, in display order.
func ByCategory(category models.Category) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the departments that have at least one product,
// in catalog order.
func Categories() []models.Category {
	seen := make(map[models.Category]bool)
	out := make([]models.Category, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
