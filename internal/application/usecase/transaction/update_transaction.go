package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Update
// is a full-record replace: every field is required and the whole record is
// rewritten except the identifier and creation timestamp.
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	Amount          decimal.Decimal
	CategoryID      uuid.UUID
	Type            entity.TransactionType
	Description     string
	Currency        string
	TransactionDate time.Time
	IsVoiceInput    bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	analyticsCache  adapter.AnalyticsCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	analyticsCache adapter.AnalyticsCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		analyticsCache:  analyticsCache,
	}
}

// Execute performs the transaction update. The category reference is
// re-validated and CategoryName recomputed from it.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	updated := &entity.Transaction{
		ID:              existing.ID,
		Amount:          input.Amount,
		CategoryID:      input.CategoryID,
		CategoryName:    category.Name,
		Type:            input.Type,
		Description:     input.Description,
		Currency:        currency,
		TransactionDate: input.TransactionDate,
		CreatedAt:       existing.CreatedAt,
		IsVoiceInput:    input.IsVoiceInput,
	}

	if err := uc.transactionRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.analyticsCache.Invalidate(ctx)

	return &UpdateTransactionOutput{
		Transaction: updated,
	}, nil
}
