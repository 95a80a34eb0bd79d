package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func txn(categoryName string, transactionType entity.TransactionType, amount string) *entity.Transaction {
	return &entity.Transaction{
		CategoryName: categoryName,
		Type:         transactionType,
		Amount:       decimal.RequireFromString(amount),
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name          string
		year          int
		month         time.Month
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "mid-year month",
			year:          2025,
			month:         time.March,
			expectedStart: "2025-03-01",
			expectedEnd:   "2025-03-31",
		},
		{
			name:          "february in a leap year",
			year:          2024,
			month:         time.February,
			expectedStart: "2024-02-01",
			expectedEnd:   "2024-02-29",
		},
		{
			name:          "december rolls into the next year",
			year:          2025,
			month:         time.December,
			expectedStart: "2025-12-01",
			expectedEnd:   "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)
			if got := start.Format("2006-01-02"); got != tt.expectedStart {
				t.Errorf("expected start %s, got %s", tt.expectedStart, got)
			}
			if got := end.Format("2006-01-02"); got != tt.expectedEnd {
				t.Errorf("expected end %s, got %s", tt.expectedEnd, got)
			}
		})
	}
}

func TestComputeMonthly(t *testing.T) {
	t.Run("totals and net amount", func(t *testing.T) {
		summary := ComputeMonthly(2025, time.March, []*entity.Transaction{
			txn("Miscellaneous", entity.TransactionTypeIncome, "75000.00"),
			txn("Groceries", entity.TransactionTypeExpense, "2500.50"),
		})

		if !summary.TotalIncome.Equal(decimal.RequireFromString("75000.00")) {
			t.Errorf("expected total income 75000.00, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.Equal(decimal.RequireFromString("2500.50")) {
			t.Errorf("expected total expense 2500.50, got %s", summary.TotalExpense)
		}
		if !summary.NetAmount.Equal(decimal.RequireFromString("72499.50")) {
			t.Errorf("expected net amount 72499.50, got %s", summary.NetAmount)
		}
		if summary.TransactionCount != 2 {
			t.Errorf("expected transaction count 2, got %d", summary.TransactionCount)
		}
		if summary.Year != 2025 || summary.Month != 3 {
			t.Errorf("expected 2025-03, got %d-%d", summary.Year, summary.Month)
		}
	})

	t.Run("groups emitted in first-seen order", func(t *testing.T) {
		summary := ComputeMonthly(2025, time.March, []*entity.Transaction{
			txn("Travel", entity.TransactionTypeExpense, "10"),
			txn("Groceries", entity.TransactionTypeExpense, "20"),
			txn("Travel", entity.TransactionTypeExpense, "30"),
		})

		if len(summary.CategoryBreakdown) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(summary.CategoryBreakdown))
		}
		if summary.CategoryBreakdown[0].Category != "Travel" {
			t.Errorf("expected first group Travel, got %s", summary.CategoryBreakdown[0].Category)
		}
		if summary.CategoryBreakdown[1].Category != "Groceries" {
			t.Errorf("expected second group Groceries, got %s", summary.CategoryBreakdown[1].Category)
		}
		if !summary.CategoryBreakdown[0].Amount.Equal(decimal.RequireFromString("40")) {
			t.Errorf("expected Travel amount 40, got %s", summary.CategoryBreakdown[0].Amount)
		}
		if summary.CategoryBreakdown[0].Count != 2 {
			t.Errorf("expected Travel count 2, got %d", summary.CategoryBreakdown[0].Count)
		}
	})

	t.Run("group type reflects the last transaction seen", func(t *testing.T) {
		summary := ComputeMonthly(2025, time.March, []*entity.Transaction{
			txn("Miscellaneous", entity.TransactionTypeExpense, "10"),
			txn("Miscellaneous", entity.TransactionTypeIncome, "20"),
		})

		if len(summary.CategoryBreakdown) != 1 {
			t.Fatalf("expected 1 group, got %d", len(summary.CategoryBreakdown))
		}
		if summary.CategoryBreakdown[0].Type != entity.TransactionTypeIncome {
			t.Errorf("expected type income, got %s", summary.CategoryBreakdown[0].Type)
		}
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		summary := ComputeMonthly(2025, time.March, nil)

		if !summary.TotalIncome.IsZero() || !summary.TotalExpense.IsZero() || !summary.NetAmount.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s net=%s",
				summary.TotalIncome, summary.TotalExpense, summary.NetAmount)
		}
		if summary.TransactionCount != 0 {
			t.Errorf("expected transaction count 0, got %d", summary.TransactionCount)
		}
		if len(summary.CategoryBreakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d groups", len(summary.CategoryBreakdown))
		}
	})
}

func TestComputeCategorySummary(t *testing.T) {
	t.Run("averages per category", func(t *testing.T) {
		summary := ComputeCategorySummary(30, []*entity.Transaction{
			txn("Groceries", entity.TransactionTypeExpense, "100"),
			txn("Groceries", entity.TransactionTypeExpense, "200"),
			txn("Groceries", entity.TransactionTypeExpense, "300"),
		})

		if summary.PeriodDays != 30 {
			t.Errorf("expected period days 30, got %d", summary.PeriodDays)
		}
		if len(summary.Categories) != 1 {
			t.Fatalf("expected 1 group, got %d", len(summary.Categories))
		}

		group := summary.Categories[0]
		if !group.TotalAmount.Equal(decimal.RequireFromString("600")) {
			t.Errorf("expected total 600, got %s", group.TotalAmount)
		}
		if group.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", group.TransactionCount)
		}
		if !group.AvgAmount.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected average 200, got %s", group.AvgAmount)
		}
	})

	t.Run("groups emitted in first-seen order", func(t *testing.T) {
		summary := ComputeCategorySummary(7, []*entity.Transaction{
			txn("Utilities", entity.TransactionTypeExpense, "50"),
			txn("Transport", entity.TransactionTypeExpense, "25"),
			txn("Utilities", entity.TransactionTypeExpense, "10"),
		})

		if len(summary.Categories) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(summary.Categories))
		}
		if summary.Categories[0].Category != "Utilities" {
			t.Errorf("expected first group Utilities, got %s", summary.Categories[0].Category)
		}
		if summary.Categories[1].Category != "Transport" {
			t.Errorf("expected second group Transport, got %s", summary.Categories[1].Category)
		}
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		summary := ComputeCategorySummary(90, nil)

		if len(summary.Categories) != 0 {
			t.Errorf("expected no groups, got %d", len(summary.Categories))
		}
		if summary.PeriodDays != 90 {
			t.Errorf("expected period days 90, got %d", summary.PeriodDays)
		}
	})
}
