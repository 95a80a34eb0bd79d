package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion and the transaction
// reassignment cascade.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	analyticsCache  adapter.AnalyticsCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	analyticsCache adapter.AnalyticsCache,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		analyticsCache:  analyticsCache,
	}
}

// Execute performs the category deletion. Default categories are protected.
// Transactions referencing the deleted category are reassigned to the
// Miscellaneous category; when no Miscellaneous category exists the
// reassignment is skipped and the dangling references remain.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.IsCustom {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryDeletion,
			"cannot delete default categories",
			domainerror.ErrDefaultCategoryProtected,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	// Cascade: move orphaned transactions to Miscellaneous. A missing
	// Miscellaneous category skips the cascade rather than failing the delete.
	misc, err := uc.categoryRepo.FindByName(ctx, entity.MiscellaneousCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cascade target: %w", err)
	}
	if misc == nil {
		slog.Warn("Miscellaneous category missing, skipping transaction reassignment",
			"deletedCategoryID", input.CategoryID,
		)
	} else {
		if err := uc.transactionRepo.ReassignCategory(ctx, input.CategoryID, misc.ID, misc.Name); err != nil {
			return nil, fmt.Errorf("failed to reassign transactions: %w", err)
		}
	}

	uc.analyticsCache.Invalidate(ctx)

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
