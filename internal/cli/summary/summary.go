package summary

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

type summaryCommand struct {
	from  string
	to    string
	month int
	year  int
}

func NewCommand() cli.Command {
	return &summaryCommand{}
}

func (c *summaryCommand) Description() string {
	return "Show totals per category for a date range, month or year"
}

func (c *summaryCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD), inclusive")
	fs.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD), inclusive")
	fs.IntVar(&c.month, "month", 0, "month to summarize (1-12)")
	fs.IntVar(&c.year, "year", 0, "year to summarize")
}

func (c *summaryCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	_ *logger.Logger,
) error {
	lang := cli.Language(conf)

	expenses, err := store.Expenses(ctx)
	if err != nil {
		return err
	}

	start, end, bounded, err := c.dateRange()
	if err != nil {
		return err
	}

	if bounded {
		expenses, err = report.FilterByDate(expenses, start, end)
		if err != nil {
			return err
		}
	}

	cli.RenderSummary(out, lang, report.Summarize(expenses))

	return nil
}

func (c *summaryCommand) dateRange() (time.Time, time.Time, bool, error) {
	switch {
	case c.month != 0:
		if c.month < 1 || c.month > 12 {
			return time.Time{}, time.Time{}, false, &expense.ValidationError{
				Field:  "month",
				Reason: "must be between 1 and 12",
			}
		}
		start, end := util.MonthRange(c.month, c.year)
		return start, end, true, nil
	case c.year != 0:
		start, end := util.YearRange(c.year)
		return start, end, true, nil
	case c.from != "" || c.to != "":
		if c.from == "" || c.to == "" {
			return time.Time{}, time.Time{}, false, &expense.ValidationError{
				Field:  "date range",
				Reason: "both -from and -to are required",
			}
		}

		start, err := expense.ParseDate(c.from)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		end, err := expense.ParseDate(c.to)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return start, end, true, nil
	default:
		return time.Time{}, time.Time{}, false, nil
	}
}
