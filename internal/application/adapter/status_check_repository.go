package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// StatusCheckRepository defines the interface for status check persistence.
type StatusCheckRepository interface {
	// Create stores a new status check.
	Create(ctx context.Context, check *entity.StatusCheck) error

	// FindAll retrieves up to limit status checks.
	FindAll(ctx context.Context, limit int) ([]*entity.StatusCheck, error)
}
