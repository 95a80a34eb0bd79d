// Package analytics contains the aggregation engine: pure functions over a
// transaction set plus the use cases that window and cache them.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MonthlySummary is the aggregate for a single calendar month.
type MonthlySummary struct {
	Month             int                     `json:"month"`
	Year              int                     `json:"year"`
	TotalIncome       decimal.Decimal         `json:"total_income"`
	TotalExpense      decimal.Decimal         `json:"total_expense"`
	NetAmount         decimal.Decimal         `json:"net_amount"`
	CategoryBreakdown []CategoryBreakdownItem `json:"category_breakdown"`
	TransactionCount  int                     `json:"transaction_count"`
}

// CategoryBreakdownItem is one category group inside a monthly summary. Type
// carries the type of the last transaction encountered for the group, which
// is not meaningful for groups mixing income and expense entries; the shape
// is kept as-is rather than split per (category, type).
type CategoryBreakdownItem struct {
	Category string                 `json:"category"`
	Amount   decimal.Decimal        `json:"amount"`
	Count    int                    `json:"count"`
	Type     entity.TransactionType `json:"type"`
}

// CategorySummary is the rolling-window per-category aggregate.
type CategorySummary struct {
	Categories []CategorySummaryItem `json:"categories"`
	PeriodDays int                   `json:"period_days"`
}

// CategorySummaryItem is one category group inside a rolling summary.
type CategorySummaryItem struct {
	Category         string          `json:"category"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	AvgAmount        decimal.Decimal `json:"avg_amount"`
}

// MonthBounds returns the first and last day of the given calendar month,
// both inclusive. December rolls into the following January correctly.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// ComputeMonthly aggregates a month's transactions. The input is assumed to be
// pre-filtered to the month's date window; grouping is by denormalized
// category name, groups emitted in first-seen order.
func ComputeMonthly(year int, month time.Month, transactions []*entity.Transaction) *MonthlySummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	groups := make(map[string]*CategoryBreakdownItem)
	var order []string

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}

		group, ok := groups[t.CategoryName]
		if !ok {
			group = &CategoryBreakdownItem{
				Category: t.CategoryName,
				Amount:   decimal.Zero,
			}
			groups[t.CategoryName] = group
			order = append(order, t.CategoryName)
		}
		group.Amount = group.Amount.Add(t.Amount)
		group.Count++
		// Last transaction seen for the group wins.
		group.Type = t.Type
	}

	breakdown := make([]CategoryBreakdownItem, len(order))
	for i, name := range order {
		breakdown[i] = *groups[name]
	}

	return &MonthlySummary{
		Month:             int(month),
		Year:              year,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		NetAmount:         totalIncome.Sub(totalExpense),
		CategoryBreakdown: breakdown,
		TransactionCount:  len(transactions),
	}
}

// ComputeCategorySummary aggregates transactions per category over a rolling
// window of periodDays. The input is assumed to be pre-filtered to
// transaction_date >= today-periodDays; future-dated records are included.
func ComputeCategorySummary(periodDays int, transactions []*entity.Transaction) *CategorySummary {
	groups := make(map[string]*CategorySummaryItem)
	var order []string

	for _, t := range transactions {
		group, ok := groups[t.CategoryName]
		if !ok {
			group = &CategorySummaryItem{
				Category:    t.CategoryName,
				TotalAmount: decimal.Zero,
				AvgAmount:   decimal.Zero,
			}
			groups[t.CategoryName] = group
			order = append(order, t.CategoryName)
		}
		group.TotalAmount = group.TotalAmount.Add(t.Amount)
		group.TransactionCount++
	}

	categories := make([]CategorySummaryItem, len(order))
	for i, name := range order {
		group := groups[name]
		// A group only exists once it holds a transaction, but the guard is
		// kept explicit.
		if group.TransactionCount > 0 {
			group.AvgAmount = group.TotalAmount.Div(decimal.NewFromInt(int64(group.TransactionCount)))
		}
		categories[i] = *group
	}

	return &CategorySummary{
		Categories: categories,
		PeriodDays: periodDays,
	}
}
