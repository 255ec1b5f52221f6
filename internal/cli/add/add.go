package add

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/util"
)

type addCommand struct {
	date     string
	category string
	amount   string
	note     string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Record a new expense"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "expense date (YYYY-MM-DD), defaults to today")
	fs.StringVar(&c.category, "category", "", "expense category")
	fs.StringVar(&c.amount, "amount", "", "expense amount, e.g. 12.50")
	fs.StringVar(&c.note, "note", "", "free-text note")
}

func (c *addCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
) error {
	lang := cli.Language(conf)

	date := expense.Day(time.Now())
	if c.date != "" {
		var err error
		date, err = expense.ParseDate(c.date)
		if err != nil {
			return err
		}
	}

	cents, err := expense.ParseAmount(c.amount)
	if err != nil {
		return err
	}

	e, err := expense.New(date, c.category, cents, c.note)
	if err != nil {
		return err
	}

	id, err := store.AddExpense(ctx, e)
	if err != nil {
		return err
	}

	log.Debug("expense recorded", "id", id, "category", e.Category, "amount", e.Amount)
	fmt.Fprintln(out, i18n.T(lang, "expense_added"))

	// mirror the expense against this month's limits right away, so an
	// exceeded budget is visible at the moment of entry
	return monthCheck(ctx, out, lang, store, conf, date)
}

func monthCheck(
	ctx context.Context,
	out io.Writer,
	lang i18n.Lang,
	store storage.Store,
	conf *config.Config,
	date time.Time,
) error {
	limits, err := store.Limits(ctx)
	if err != nil {
		return err
	}

	if len(limits) == 0 {
		return nil
	}

	expenses, err := store.Expenses(ctx)
	if err != nil {
		return err
	}

	start, end := util.MonthRange(int(date.Month()), date.Year())
	monthExpenses, err := report.FilterByDate(expenses, start, end)
	if err != nil {
		return err
	}

	rep, err := report.Check(report.Summarize(monthExpenses), limits, conf.WarningFraction)
	if err != nil {
		return err
	}

	cli.RenderBudget(out, lang, rep)

	return nil
}
