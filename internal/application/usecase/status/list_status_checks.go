package status

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MaxStatusChecks bounds how many checks a listing returns.
const MaxStatusChecks = 1000

// ListStatusChecksOutput represents the output of status check listing.
type ListStatusChecksOutput struct {
	StatusChecks []*entity.StatusCheck
}

// ListStatusChecksUseCase lists recorded status checks.
type ListStatusChecksUseCase struct {
	statusRepo adapter.StatusCheckRepository
}

// NewListStatusChecksUseCase creates a new ListStatusChecksUseCase instance.
func NewListStatusChecksUseCase(statusRepo adapter.StatusCheckRepository) *ListStatusChecksUseCase {
	return &ListStatusChecksUseCase{
		statusRepo: statusRepo,
	}
}

// Execute returns stored status checks.
func (uc *ListStatusChecksUseCase) Execute(ctx context.Context) (*ListStatusChecksOutput, error) {
	checks, err := uc.statusRepo.FindAll(ctx, MaxStatusChecks)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	return &ListStatusChecksOutput{
		StatusChecks: checks,
	}, nil
}
