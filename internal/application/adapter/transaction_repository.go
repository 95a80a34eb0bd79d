package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves transactions ordered by creation time descending,
	// sliced [offset, offset+limit).
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)

	// Update replaces an existing transaction record.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the store. Returns
	// ErrTransactionNotFound when no record matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByDateRange retrieves transactions whose transaction date falls
	// within [start, end], both bounds inclusive.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// FindFromDate retrieves transactions whose transaction date is on or
	// after start, with no upper bound. Future-dated records are included.
	FindFromDate(ctx context.Context, start time.Time) ([]*entity.Transaction, error)

	// ReassignCategory rewrites category_id and category_name on every
	// transaction referencing oldCategoryID. Used by the delete cascade.
	ReassignCategory(ctx context.Context, oldCategoryID, newCategoryID uuid.UUID, newCategoryName string) error
}
