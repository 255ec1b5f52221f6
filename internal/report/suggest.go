package report

import (
	"time"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/util"
)

const suggestionWindow = 3

// SuggestLimits proposes a monthly limit per category for the given month:
// the average spend over the months of the preceding three-month window in
// which the category saw any spend at all.
func SuggestLimits(expenses []expense.Expense, month time.Time) map[string]int64 {
	spendByMonth := map[string]map[string]int64{}
	for _, e := range expenses {
		key := e.MonthKey()
		if spendByMonth[key] == nil {
			spendByMonth[key] = map[string]int64{}
		}
		spendByMonth[key][e.Category] += e.Amount
	}

	previous := make([]string, 0, suggestionWindow)
	cursor := month
	for i := 0; i < suggestionWindow; i++ {
		cursor = util.PrevMonth(cursor)
		previous = append(previous, util.MonthKey(cursor))
	}

	suggestions := map[string]int64{}
	counts := map[string]int64{}
	for _, key := range previous {
		for category, spent := range spendByMonth[key] {
			suggestions[category] += spent
			counts[category]++
		}
	}

	for category, total := range suggestions {
		suggestions[category] = total / counts[category]
	}

	return suggestions
}
