package budget

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/util"
)

type budgetCommand struct {
	month           int
	year            int
	warningFraction float64
}

func NewCommand() cli.Command {
	return &budgetCommand{}
}

func (c *budgetCommand) Description() string {
	return "Compare a month's spending against the configured limits"
}

func (c *budgetCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.month, "month", 0, "month to check (1-12), defaults to the current month")
	fs.IntVar(&c.year, "year", 0, "year to check, defaults to the current year")
	fs.Float64Var(&c.warningFraction, "warning", 0, "warning threshold as a fraction of the limit, overrides the configured value")
}

func (c *budgetCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	_ *logger.Logger,
) error {
	lang := cli.Language(conf)

	month := c.month
	year := c.year
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return &expense.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	if year == 0 {
		year = now.Year()
	}

	warningFraction := conf.WarningFraction
	if c.warningFraction != 0 {
		warningFraction = c.warningFraction
	}

	expenses, err := store.Expenses(ctx)
	if err != nil {
		return err
	}

	limits, err := store.Limits(ctx)
	if err != nil {
		return err
	}

	start, end := util.MonthRange(month, year)
	monthExpenses, err := report.FilterByDate(expenses, start, end)
	if err != nil {
		return err
	}

	rep, err := report.Check(report.Summarize(monthExpenses), limits, warningFraction)
	if err != nil {
		return err
	}

	cli.RenderBudget(out, lang, rep)

	return nil
}
