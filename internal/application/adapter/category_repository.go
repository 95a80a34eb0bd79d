// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the store.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves the first category with the given name, or nil when
	// none exists. Names are not unique; the cascade target lookup uses this.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves all categories in store-insertion order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category from the store.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of categories in the store.
	Count(ctx context.Context) (int64, error)
}
