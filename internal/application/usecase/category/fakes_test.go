package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory CategoryRepository keeping insertion order.
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

// fakeTransactionRepo records reassignment calls made by the delete cascade.
type fakeTransactionRepo struct {
	reassignCalls []reassignCall
}

type reassignCall struct {
	oldCategoryID   uuid.UUID
	newCategoryID   uuid.UUID
	newCategoryName string
}

func (r *fakeTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) ReassignCategory(_ context.Context, oldCategoryID, newCategoryID uuid.UUID, newCategoryName string) error {
	r.reassignCalls = append(r.reassignCalls, reassignCall{
		oldCategoryID:   oldCategoryID,
		newCategoryID:   newCategoryID,
		newCategoryName: newCategoryName,
	})
	return nil
}

// fakeAnalyticsCache counts invalidations.
type fakeAnalyticsCache struct {
	invalidations int
}

func (c *fakeAnalyticsCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

func (c *fakeAnalyticsCache) Set(_ context.Context, _ string, _ []byte) {}

func (c *fakeAnalyticsCache) Invalidate(_ context.Context) { c.invalidations++ }
