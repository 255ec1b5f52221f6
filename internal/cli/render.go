package cli

import (
	"fmt"
	"io"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/util"
)

func Money(cents int64) string {
	return "$" + util.FormatMoney(cents, ",", ".")
}

// RenderExpenses prints one line per record plus the running total.
func RenderExpenses(out io.Writer, lang i18n.Lang, expenses []expense.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(out, i18n.T(lang, "no_results"))
		return
	}

	var total int64
	for _, e := range expenses {
		line := fmt.Sprintf("%s  %s  %s", expense.FormatDate(e.Date), e.Category, Money(e.Amount))
		if e.Note != "" {
			line += fmt.Sprintf(" (%s)", e.Note)
		}
		fmt.Fprintln(out, line)
		total += e.Amount
	}

	fmt.Fprintln(out, i18n.Tf(lang, "total_expenses", Money(total)))
}

// RenderSummary prints per-category totals ordered by descending amount.
func RenderSummary(out io.Writer, lang i18n.Lang, summary report.Summary) {
	fmt.Fprintln(out, i18n.T(lang, "summary_header"))

	if len(summary.Categories) == 0 {
		fmt.Fprintln(out, i18n.T(lang, "no_expenses"))
		return
	}

	for _, c := range summary.Categories {
		fmt.Fprintln(out, i18n.Tf(lang, "summary_line", c.Category, Money(c.Amount)))
	}

	fmt.Fprintln(out, i18n.Tf(lang, "total_expenses", Money(summary.Total)))
}

// RenderBudget prints each monitored category with its status colored, then
// any spend that has no configured limit.
func RenderBudget(out io.Writer, lang i18n.Lang, rep report.BudgetReport) {
	fmt.Fprintln(out, i18n.T(lang, "budget_header"))

	if len(rep.Categories) == 0 {
		fmt.Fprintln(out, i18n.T(lang, "no_limits_set"))
	}

	for _, c := range rep.Categories {
		line := i18n.Tf(lang, "budget_line", c.Category, Money(c.Spent), Money(c.Limit), c.Ratio*100)

		switch c.Status {
		case report.BudgetStatusExceeded:
			fmt.Fprintf(out, "%s %s\n", util.ColorOutput(line, "red", "bold"),
				i18n.Tf(lang, "budget_exceeded", c.Category))
		case report.BudgetStatusWarning:
			fmt.Fprintf(out, "%s %s\n", util.ColorOutput(line, "yellow"),
				i18n.Tf(lang, "budget_warning", c.Category))
		default:
			fmt.Fprintf(out, "%s %s\n", util.ColorOutput(line, "green"),
				i18n.Tf(lang, "budget_ok", c.Category))
		}
	}

	for _, c := range rep.Unmonitored {
		fmt.Fprintln(out, i18n.Tf(lang, "budget_unmonitored", c.Category, Money(c.Amount)))
	}
}
