package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepo is a minimal in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

// fakeTransactionRepo is an in-memory TransactionRepository keeping insertion
// order; FindAll returns newest first like the real store.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Transaction, error) {
	reversed := make([]*entity.Transaction, 0, len(r.transactions))
	for i := len(r.transactions) - 1; i >= 0; i-- {
		reversed = append(reversed, r.transactions[i])
	}
	if offset >= len(reversed) {
		return nil, nil
	}
	reversed = reversed[offset:]
	if limit < len(reversed) {
		reversed = reversed[:limit]
	}
	return reversed, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, t := range r.transactions {
		if t.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if !t.TransactionDate.Before(start) && !t.TransactionDate.After(end) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *fakeTransactionRepo) FindFromDate(_ context.Context, start time.Time) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if !t.TransactionDate.Before(start) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *fakeTransactionRepo) ReassignCategory(_ context.Context, oldCategoryID, newCategoryID uuid.UUID, newCategoryName string) error {
	for _, t := range r.transactions {
		if t.CategoryID == oldCategoryID {
			t.CategoryID = newCategoryID
			t.CategoryName = newCategoryName
		}
	}
	return nil
}

// fakeAnalyticsCache counts invalidations.
type fakeAnalyticsCache struct {
	invalidations int
}

func (c *fakeAnalyticsCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

func (c *fakeAnalyticsCache) Set(_ context.Context, _ string, _ []byte) {}

func (c *fakeAnalyticsCache) Invalidate(_ context.Context) { c.invalidations++ }
