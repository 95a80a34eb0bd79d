package category

import (
	"context"
	"testing"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func TestSeedDefaultCategories(t *testing.T) {
	t.Run("seeds ten categories into an empty store", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewSeedDefaultCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded != 10 {
			t.Errorf("expected 10 seeded, got %d", output.Seeded)
		}
		if len(repo.categories) != 10 {
			t.Fatalf("expected 10 categories in store, got %d", len(repo.categories))
		}

		first := repo.categories[0]
		if first.Name != "Rent" || first.Color != "#FF6B6B" || first.Icon != "home" {
			t.Errorf("unexpected first seed: %+v", first)
		}
		last := repo.categories[9]
		if last.Name != entity.MiscellaneousCategoryName {
			t.Errorf("expected last seed Miscellaneous, got %s", last.Name)
		}
		for _, c := range repo.categories {
			if c.IsCustom {
				t.Errorf("seeded category %q must not be custom", c.Name)
			}
		}
	})

	t.Run("does not run twice", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewSeedDefaultCategoriesUseCase(repo)

		if _, err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded != 0 {
			t.Errorf("expected 0 seeded on second run, got %d", output.Seeded)
		}
		if len(repo.categories) != 10 {
			t.Errorf("expected 10 categories, got %d", len(repo.categories))
		}
	})

	t.Run("skips a store that already has any category", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		repo.categories = append(repo.categories, entity.NewCustomCategory("Subscriptions", "#123456", "credit-card"))
		uc := NewSeedDefaultCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Seeded != 0 {
			t.Errorf("expected 0 seeded, got %d", output.Seeded)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected store untouched, got %d categories", len(repo.categories))
		}
	})
}
