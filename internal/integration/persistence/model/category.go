// Package model defines database models for the persistence layer. Mapping
// functions apply per-field defaults so partial or legacy rows never crash
// deserialization.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the store.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Color     string    `gorm:"type:varchar(7)"`
	Icon      string    `gorm:"type:varchar(50)"`
	IsCustom  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity. Missing
// presentation fields fall back to the documented defaults.
func (m *CategoryModel) ToEntity() *entity.Category {
	color := m.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := m.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     color,
		Icon:      icon,
		IsCustom:  m.IsCustom,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		IsCustom:  category.IsCustom,
		CreatedAt: category.CreatedAt,
	}
}
