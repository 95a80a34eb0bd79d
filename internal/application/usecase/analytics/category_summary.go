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

// GetCategorySummaryInput represents the input for the rolling category summary.
type GetCategorySummaryInput struct {
	PeriodDays int
}

// GetCategorySummaryUseCase derives the rolling per-category summary. The
// window is [today - days, ∞): only the lower bound filters, so future-dated
// transactions are included.
type GetCategorySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	analyticsCache  adapter.AnalyticsCache

	// Now is the clock used to anchor the rolling window; overridable in tests.
	Now func() time.Time
}

// NewGetCategorySummaryUseCase creates a new GetCategorySummaryUseCase instance.
func NewGetCategorySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	analyticsCache adapter.AnalyticsCache,
) *GetCategorySummaryUseCase {
	return &GetCategorySummaryUseCase{
		transactionRepo: transactionRepo,
		analyticsCache:  analyticsCache,
		Now:             time.Now,
	}
}

// Execute computes the per-category summary over the trailing window.
func (uc *GetCategorySummaryUseCase) Execute(ctx context.Context, input GetCategorySummaryInput) (*CategorySummary, error) {
	if input.PeriodDays < 1 {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriodDays,
			"period days must be a positive integer",
			domainerror.ErrInvalidPeriodDays,
		)
	}

	cacheKey := fmt.Sprintf("analytics:category-summary:%d", input.PeriodDays)
	if payload, ok := uc.analyticsCache.Get(ctx, cacheKey); ok {
		var cached CategorySummary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		slog.Warn("Discarding undecodable analytics cache entry", "key", cacheKey)
	}

	now := uc.Now().UTC()
	cutoff := now.AddDate(0, 0, -input.PeriodDays)
	start := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	transactions, err := uc.transactionRepo.FindFromDate(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for summary: %w", err)
	}

	summary := ComputeCategorySummary(input.PeriodDays, transactions)

	if payload, err := json.Marshal(summary); err == nil {
		uc.analyticsCache.Set(ctx, cacheKey, payload)
	}

	return summary, nil
}
