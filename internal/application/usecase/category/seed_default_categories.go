package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SeedDefaultCategoriesOutput reports whether seeding ran.
type SeedDefaultCategoriesOutput struct {
	Seeded int
}

// SeedDefaultCategoriesUseCase inserts the frozen default category set into an
// empty store. It never runs while any category exists, custom ones included.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories when the store is empty.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context) (*SeedDefaultCategoriesOutput, error) {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &SeedDefaultCategoriesOutput{Seeded: 0}, nil
	}

	defaults := entity.DefaultCategories()
	for _, category := range defaults {
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	slog.Info("Default categories seeded", "count", len(defaults))

	return &SeedDefaultCategoriesOutput{Seeded: len(defaults)}, nil
}
