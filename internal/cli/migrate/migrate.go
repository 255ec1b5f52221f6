// Package migrate imports the flat JSON files of the json backend into
// whatever store the configuration points at, typically the sqlite backend.
// Records that already exist are skipped, so running it twice is safe.
package migrate

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
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage/jsonfile"
)

type migrateCommand struct {
	expensesFile string
	limitsFile   string
}

func NewCommand() cli.Command {
	return &migrateCommand{}
}

func (c *migrateCommand) Description() string {
	return "Import expenses.json and budget_limits.json into the configured store"
}

func (c *migrateCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.expensesFile, "expenses", "expenses.json", "JSON expenses file to import")
	fs.StringVar(&c.limitsFile, "limits", "budget_limits.json", "JSON limits file to import")
}

func (c *migrateCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
) error {
	source, err := jsonfile.New(c.expensesFile, c.limitsFile)
	if err != nil {
		return err
	}

	expenses, err := source.Expenses(ctx)
	if err != nil {
		return err
	}

	limits, err := source.Limits(ctx)
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

		e.ID = 0
		if _, err = store.AddExpense(ctx, e); err != nil {
			return err
		}

		seen[expenseKey(e)] = true
		imported++
	}

	for category, cents := range limits {
		if err = store.SetLimit(ctx, category, cents); err != nil {
			return err
		}
	}

	log.Info("migration finished", "expenses", imported, "limits", len(limits))
	fmt.Fprintln(out, i18n.Tf(cli.Language(conf), "migrate_done", imported, len(limits)))

	return nil
}

func expenseKey(e expense.Expense) string {
	return fmt.Sprintf("%s|%s|%d|%s", expense.FormatDate(e.Date), e.Category, e.Amount, e.Note)
}
