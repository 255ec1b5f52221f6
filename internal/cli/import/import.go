// Package importcmd reads expenses back from a CSV file produced by the
// export command. Records already present in the store are skipped, so
// importing the same file twice does not duplicate anything.
package importcmd

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
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type importCommand struct {
	file string
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Import expenses from a CSV file"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "CSV file to import")
}

func (c *importCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
) error {
	if c.file == "" {
		return &expense.ValidationError{Field: "file", Reason: "-f is required"}
	}

	file, err := os.Open(c.file)
	if err != nil {
		return &storage.StorageError{Op: "import csv", Err: err}
	}
	defer file.Close()

	expenses, err := internalExport.ReadCSV(file)
	if err != nil {
		return err
	}

	existing, err := store.Expenses(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[expenseKey(e)] = true
	}

	var imported int
	for _, e := range expenses {
		if seen[expenseKey(e)] {
			log.Debug("skipping duplicate expense", "date", expense.FormatDate(e.Date), "category", e.Category)
			continue
		}

		if _, err = store.AddExpense(ctx, e); err != nil {
			return err
		}

		seen[expenseKey(e)] = true
		imported++
	}

	log.Info("import finished", "path", c.file, "count", imported)
	fmt.Fprintln(out, i18n.Tf(cli.Language(conf), "expenses_imported", imported))

	return nil
}

func expenseKey(e expense.Expense) string {
	return fmt.Sprintf("%s|%s|%d|%s", expense.FormatDate(e.Date), e.Category, e.Amount, e.Note)
}
