package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetMonthlyAnalyticsInput represents the input for monthly analytics.
type GetMonthlyAnalyticsInput struct {
	Year  int
	Month int
}

// GetMonthlyAnalyticsUseCase derives the monthly summary from the transaction
// store, with a read-through cache in front of the aggregation.
type GetMonthlyAnalyticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	analyticsCache  adapter.AnalyticsCache
}

// NewGetMonthlyAnalyticsUseCase creates a new GetMonthlyAnalyticsUseCase instance.
func NewGetMonthlyAnalyticsUseCase(
	transactionRepo adapter.TransactionRepository,
	analyticsCache adapter.AnalyticsCache,
) *GetMonthlyAnalyticsUseCase {
	return &GetMonthlyAnalyticsUseCase{
		transactionRepo: transactionRepo,
		analyticsCache:  analyticsCache,
	}
}

// Execute computes the summary for the given calendar month.
func (uc *GetMonthlyAnalyticsUseCase) Execute(ctx context.Context, input GetMonthlyAnalyticsInput) (*MonthlySummary, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	cacheKey := fmt.Sprintf("analytics:monthly:%04d-%02d", input.Year, input.Month)
	if payload, ok := uc.analyticsCache.Get(ctx, cacheKey); ok {
		var cached MonthlySummary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		slog.Warn("Discarding undecodable analytics cache entry", "key", cacheKey)
	}

	start, end := MonthBounds(input.Year, time.Month(input.Month))
	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for month: %w", err)
	}

	summary := ComputeMonthly(input.Year, time.Month(input.Month), transactions)

	if payload, err := json.Marshal(summary); err == nil {
		uc.analyticsCache.Set(ctx, cacheKey, payload)
	}

	return summary, nil
}
