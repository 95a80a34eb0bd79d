package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// statusCheckRepository implements the adapter.StatusCheckRepository interface.
type statusCheckRepository struct {
	db *gorm.DB
}

// NewStatusCheckRepository creates a new status check repository instance.
func NewStatusCheckRepository(db *gorm.DB) adapter.StatusCheckRepository {
	return &statusCheckRepository{
		db: db,
	}
}

// Create stores a new status check.
func (r *statusCheckRepository) Create(ctx context.Context, check *entity.StatusCheck) error {
	checkModel := model.StatusCheckFromEntity(check)
	result := r.db.WithContext(ctx).Create(checkModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves up to limit status checks.
func (r *statusCheckRepository) FindAll(ctx context.Context, limit int) ([]*entity.StatusCheck, error) {
	var checkModels []model.StatusCheckModel
	result := r.db.WithContext(ctx).Limit(limit).Find(&checkModels)
	if result.Error != nil {
		return nil, result.Error
	}

	checks := make([]*entity.StatusCheck, len(checkModels))
	for i, cm := range checkModels {
		checks[i] = cm.ToEntity()
	}
	return checks, nil
}
