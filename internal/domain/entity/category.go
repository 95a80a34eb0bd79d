// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the color applied when a category is created without one.
const DefaultCategoryColor = "#FF6B6B"

// DefaultCategoryIcon is the icon applied when a category is created without one.
const DefaultCategoryIcon = "dollar-sign"

// MiscellaneousCategoryName is the category that absorbs transactions of a
// deleted custom category.
const MiscellaneousCategoryName = "Miscellaneous"

// Category represents a spending category. Categories with IsCustom=false are
// the seeded defaults and can never be deleted.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	IsCustom  bool
	CreatedAt time.Time
}

// NewCustomCategory creates a user-defined category. Defaulting of color and
// icon happens in the use case layer before this constructor is called.
func NewCustomCategory(name, color, icon string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsCustom:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// DefaultCategories returns the frozen seed set. Names, colors and icons are a
// reference table; seeding inserts them only into an empty store.
func DefaultCategories() []*Category {
	seed := []struct {
		name  string
		color string
		icon  string
	}{
		{"Rent", "#FF6B6B", "home"},
		{"EMI", "#4ECDC4", "credit-card"},
		{"Travel", "#45B7D1", "plane"},
		{"Groceries", "#FFA07A", "shopping-cart"},
		{"Eating Out", "#98D8C8", "utensils"},
		{"Utilities", "#F7DC6F", "zap"},
		{"Transport", "#BB8FCE", "car"},
		{"Household", "#85C1E9", "home"},
		{"Grooming & PC", "#F8C471", "scissors"},
		{"Miscellaneous", "#D5A6BD", "more-horizontal"},
	}

	categories := make([]*Category, len(seed))
	now := time.Now().UTC()
	for i, s := range seed {
		categories[i] = &Category{
			ID:        uuid.New(),
			Name:      s.name,
			Color:     s.color,
			Icon:      s.icon,
			IsCustom:  false,
			CreatedAt: now,
		}
	}
	return categories
}
