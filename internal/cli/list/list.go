package list

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type listCommand struct {
	from string
	to   string
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "List expenses, optionally restricted to a date range"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD), inclusive")
	fs.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD), inclusive")
}

func (c *listCommand) Run(
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

	if (c.from == "") != (c.to == "") {
		return &expense.ValidationError{Field: "date range", Reason: "both -from and -to are required"}
	}

	if c.from != "" {
		start, err := expense.ParseDate(c.from)
		if err != nil {
			return err
		}

		end, err := expense.ParseDate(c.to)
		if err != nil {
			return err
		}

		expenses, err = report.FilterByDate(expenses, start, end)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, i18n.T(lang, "filter_results_header"))
	}

	cli.RenderExpenses(out, lang, expenses)

	return nil
}
