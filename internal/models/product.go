package models

import (
	"github.com/google/uuid"
)

// Category is the fixed set of catalog departments.
type Category string

const (
	CategoryFruits       Category = "Fruits"
	CategoryVegetables   Category = "Vegetables"
	CategoryBakery       Category = "Bakery"
	CategoryDairy        Category = "Dairy & Eggs"
	CategoryMeat         Category = "Meat & Seafood"
	CategoryFrozen       Category = "Frozen Foods"
	CategoryPantry       Category = "Pantry"
	CategorySnacks       Category = "Snacks"
	CategoryBeverages    Category = "Beverages"
	CategoryBreakfast    Category = "Breakfast"
	CategoryHousehold    Category = "Household"
	CategoryPersonalCare Category = "Personal Care"
	CategoryPets         Category = "Pet Supplies"
)

// Product is a catalog entry. The catalog owns these; everything else
// holds copies, so a catalog price change never leaks into an order.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
}
