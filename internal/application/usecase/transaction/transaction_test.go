package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func groceries() *entity.Category {
	return &entity.Category{
		ID:        uuid.New(),
		Name:      "Groceries",
		Color:     "#FFA07A",
		Icon:      "shopping-cart",
		CreatedAt: time.Now().UTC(),
	}
}

func date(value string) time.Time {
	d, err := time.ParseInLocation(entity.TransactionDateLayout, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateTransaction(t *testing.T) {
	t.Run("stamps the category name and defaults the currency", func(t *testing.T) {
		category := groceries()
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
		txnRepo := &fakeTransactionRepo{}
		cache := &fakeAnalyticsCache{}
		uc := NewCreateTransactionUseCase(txnRepo, categoryRepo, cache)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Amount:          decimal.RequireFromString("250.00"),
			CategoryID:      category.ID,
			Type:            entity.TransactionTypeExpense,
			Description:     "weekly shop",
			TransactionDate: date("2025-03-05"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created := output.Transaction
		if created.CategoryName != "Groceries" {
			t.Errorf("expected stamped name Groceries, got %s", created.CategoryName)
		}
		if created.Currency != entity.DefaultCurrency {
			t.Errorf("expected default currency %s, got %s", entity.DefaultCurrency, created.Currency)
		}
		if created.ID == uuid.Nil {
			t.Error("expected generated id")
		}
		if len(txnRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(txnRepo.transactions))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown category stores nothing", func(t *testing.T) {
		categoryRepo := &fakeCategoryRepo{}
		txnRepo := &fakeTransactionRepo{}
		cache := &fakeAnalyticsCache{}
		uc := NewCreateTransactionUseCase(txnRepo, categoryRepo, cache)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Amount:          decimal.RequireFromString("10"),
			CategoryID:      uuid.New(),
			Type:            entity.TransactionTypeExpense,
			TransactionDate: date("2025-03-05"),
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTxnCategoryNotFound, txnErr.Code)
		}
		if len(txnRepo.transactions) != 0 {
			t.Errorf("expected no stored transactions, got %d", len(txnRepo.transactions))
		}
		if cache.invalidations != 0 {
			t.Errorf("expected no cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects invalid transaction types", func(t *testing.T) {
		category := groceries()
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
		uc := NewCreateTransactionUseCase(&fakeTransactionRepo{}, categoryRepo, &fakeAnalyticsCache{})

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Amount:          decimal.RequireFromString("10"),
			CategoryID:      category.ID,
			Type:            entity.TransactionType("transfer"),
			TransactionDate: date("2025-03-05"),
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeInvalidTransactionType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTransactionType, txnErr.Code)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("replaces the record preserving id and creation time", func(t *testing.T) {
		category := groceries()
		travel := &entity.Category{ID: uuid.New(), Name: "Travel"}
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category, travel}}

		existing := entity.NewTransaction(
			decimal.RequireFromString("100"),
			category.ID,
			category.Name,
			entity.TransactionTypeExpense,
			"original",
			"INR",
			date("2025-03-12"),
			false,
		)
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		cache := &fakeAnalyticsCache{}
		uc := NewUpdateTransactionUseCase(txnRepo, categoryRepo, cache)

		output, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID:   existing.ID,
			Amount:          decimal.RequireFromString("75.50"),
			CategoryID:      travel.ID,
			Type:            entity.TransactionTypeExpense,
			Description:     "corrected",
			TransactionDate: date("2025-03-13"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := output.Transaction
		if updated.ID != existing.ID {
			t.Errorf("expected id preserved, got %s", updated.ID)
		}
		if !updated.CreatedAt.Equal(existing.CreatedAt) {
			t.Errorf("expected creation time preserved, got %s", updated.CreatedAt)
		}
		if updated.CategoryName != "Travel" {
			t.Errorf("expected recomputed category name Travel, got %s", updated.CategoryName)
		}
		if updated.Currency != entity.DefaultCurrency {
			t.Errorf("expected defaulted currency, got %s", updated.Currency)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown transaction returns not found", func(t *testing.T) {
		category := groceries()
		categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{category}}
		uc := NewUpdateTransactionUseCase(&fakeTransactionRepo{}, categoryRepo, &fakeAnalyticsCache{})

		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID:   uuid.New(),
			Amount:          decimal.RequireFromString("10"),
			CategoryID:      category.ID,
			Type:            entity.TransactionTypeExpense,
			TransactionDate: date("2025-03-13"),
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionNotFound, txnErr.Code)
		}
	})

	t.Run("category is validated before the transaction lookup", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(&fakeTransactionRepo{}, &fakeCategoryRepo{}, &fakeAnalyticsCache{})

		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			TransactionID:   uuid.New(),
			Amount:          decimal.RequireFromString("10"),
			CategoryID:      uuid.New(),
			Type:            entity.TransactionTypeExpense,
			TransactionDate: date("2025-03-13"),
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTxnCategoryNotFound, txnErr.Code)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes the record and invalidates the cache", func(t *testing.T) {
		category := groceries()
		existing := entity.NewTransaction(
			decimal.RequireFromString("10"),
			category.ID,
			category.Name,
			entity.TransactionTypeExpense,
			"",
			"INR",
			date("2025-03-01"),
			false,
		)
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		cache := &fakeAnalyticsCache{}
		uc := NewDeleteTransactionUseCase(txnRepo, cache)

		if _, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: existing.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txnRepo.transactions) != 0 {
			t.Errorf("expected empty store, got %d", len(txnRepo.transactions))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown transaction returns not found", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(&fakeTransactionRepo{}, &fakeAnalyticsCache{})

		_, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: uuid.New()})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionNotFound, txnErr.Code)
		}
	})
}

func TestListTransactions(t *testing.T) {
	category := groceries()
	newTxn := func(amount string) *entity.Transaction {
		return entity.NewTransaction(
			decimal.RequireFromString(amount),
			category.ID,
			category.Name,
			entity.TransactionTypeExpense,
			"",
			"INR",
			date("2025-03-01"),
			false,
		)
	}

	t.Run("applies the default limit and zero offset", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{newTxn("1"), newTxn("2")}}
		uc := NewListTransactionsUseCase(txnRepo)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{Limit: 0, Offset: -5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("returns newest first with limit applied", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{newTxn("1"), newTxn("2"), newTxn("3")}}
		uc := NewListTransactionsUseCase(txnRepo)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(output.Transactions))
		}
		if !output.Transactions[0].Amount.Equal(decimal.RequireFromString("3")) {
			t.Errorf("expected newest transaction first, got amount %s", output.Transactions[0].Amount)
		}
	})
}
