// Package status contains status check use cases.
package status

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateStatusCheckInput represents the input for status check creation.
type CreateStatusCheckInput struct {
	ClientName string
}

// CreateStatusCheckOutput represents the output of status check creation.
type CreateStatusCheckOutput struct {
	StatusCheck *entity.StatusCheck
}

// CreateStatusCheckUseCase records a client liveness ping.
type CreateStatusCheckUseCase struct {
	statusRepo adapter.StatusCheckRepository
}

// NewCreateStatusCheckUseCase creates a new CreateStatusCheckUseCase instance.
func NewCreateStatusCheckUseCase(statusRepo adapter.StatusCheckRepository) *CreateStatusCheckUseCase {
	return &CreateStatusCheckUseCase{
		statusRepo: statusRepo,
	}
}

// Execute stores the status check.
func (uc *CreateStatusCheckUseCase) Execute(ctx context.Context, input CreateStatusCheckInput) (*CreateStatusCheckOutput, error) {
	check := entity.NewStatusCheck(input.ClientName)

	if err := uc.statusRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}

	return &CreateStatusCheckOutput{
		StatusCheck: check,
	}, nil
}
