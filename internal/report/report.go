// Package report holds the pure computations over expense records: date
// range filtering, per-category aggregation and budget limit checking. Every
// function takes explicit inputs and returns newly computed values; nothing
// in here mutates the store.
package report

import (
	"sort"
	"time"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
)

type BudgetStatus string

const (
	BudgetStatusOK       BudgetStatus = "ok"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

// DefaultWarningFraction is the share of the limit at which a category flips
// from OK to WARNING.
const DefaultWarningFraction = 0.8

type CategoryTotal struct {
	Category string
	Amount   int64
}

// Summary is the derived per-category aggregate. Never persisted, recomputed
// on every query.
type Summary struct {
	Categories []CategoryTotal
	Total      int64
}

type CategoryBudget struct {
	Category string
	Spent    int64
	Limit    int64
	Ratio    float64
	Status   BudgetStatus
}

type BudgetReport struct {
	Categories []CategoryBudget
	// Unmonitored lists categories with spend but no configured limit.
	Unmonitored []CategoryTotal
}

// FilterByDate returns the subsequence of expenses whose date falls within
// [start, end], preserving the original order. Both bounds are calendar
// dates, inclusive.
func FilterByDate(expenses []expense.Expense, start, end time.Time) ([]expense.Expense, error) {
	start = expense.Day(start)
	end = expense.Day(end)

	if start.After(end) {
		return nil, &expense.ValidationError{Field: "date range", Reason: "start is after end"}
	}

	filtered := []expense.Expense{}
	for _, e := range expenses {
		d := expense.Day(e.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		filtered = append(filtered, e)
	}

	return filtered, nil
}

// Summarize sums amounts per category. Sums are exact: amounts are already
// integer cents, so the grand total always equals the sum of the category
// totals. Categories come back ordered by descending total, ties broken by
// name ascending.
func Summarize(expenses []expense.Expense) Summary {
	totals := map[string]int64{}
	var grandTotal int64

	for _, e := range expenses {
		totals[e.Category] += e.Amount
		grandTotal += e.Amount
	}

	categories := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		categories = append(categories, CategoryTotal{Category: category, Amount: amount})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount != categories[j].Amount {
			return categories[i].Amount > categories[j].Amount
		}
		return categories[i].Category < categories[j].Category
	})

	return Summary{
		Categories: categories,
		Total:      grandTotal,
	}
}

// Check compares summarized spending against configured limits. Every
// category present in limits is reported, spent or not; spend on categories
// without a limit ends up in Unmonitored instead of being dropped. The
// result is a pure function of (spent, limit, warningFraction).
func Check(summary Summary, limits map[string]int64, warningFraction float64) (BudgetReport, error) {
	if warningFraction <= 0 || warningFraction > 1 {
		return BudgetReport{}, &expense.ValidationError{
			Field:  "warning fraction",
			Reason: "must be in (0, 1]",
		}
	}

	spentByCategory := make(map[string]int64, len(summary.Categories))
	for _, c := range summary.Categories {
		spentByCategory[c.Category] = c.Amount
	}

	categories := make([]CategoryBudget, 0, len(limits))
	for category, limit := range limits {
		spent := spentByCategory[category]
		categories = append(categories, CategoryBudget{
			Category: category,
			Spent:    spent,
			Limit:    limit,
			Ratio:    float64(spent) / float64(limit),
			Status:   classify(spent, limit, warningFraction),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	var unmonitored []CategoryTotal
	for _, c := range summary.Categories {
		if _, monitored := limits[c.Category]; !monitored {
			unmonitored = append(unmonitored, c)
		}
	}

	return BudgetReport{
		Categories:  categories,
		Unmonitored: unmonitored,
	}, nil
}

func classify(spent, limit int64, warningFraction float64) BudgetStatus {
	switch {
	case spent > limit:
		return BudgetStatusExceeded
	case float64(spent) >= warningFraction*float64(limit):
		return BudgetStatusWarning
	default:
		return BudgetStatusOK
	}
}
