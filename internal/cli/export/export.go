package export

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	internalExport "github.com/GustavoCaso/expenseanalyzer/internal/export"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type exportCommand struct {
	output string
	from   string
	to     string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Export expenses as CSV"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "destination file, defaults to stdout")
	fs.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD), inclusive")
	fs.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD), inclusive")
}

func (c *exportCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
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
	}

	destination := out
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return &storage.StorageError{Op: "export csv", Err: err}
		}
		defer file.Close()

		destination = file
	}

	count, err := internalExport.CSV(destination, expenses)
	if err != nil {
		return err
	}

	log.Debug("expenses exported", "count", count, "path", c.output)

	if c.output != "" {
		fmt.Fprintln(out, i18n.Tf(lang, "export_done", count))
	}

	return nil
}
