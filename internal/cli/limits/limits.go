package limits

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/export"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type limitsCommand struct {
	set        string
	amount     string
	exportPath string
	importPath string
	suggest    bool
	month      int
	year       int
}

func NewCommand() cli.Command {
	return &limitsCommand{}
}

func (c *limitsCommand) Description() string {
	return "Show, set, import, export or suggest monthly budget limits"
}

func (c *limitsCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.set, "set", "", "category to set a limit for")
	fs.StringVar(&c.amount, "amount", "", "monthly limit amount, e.g. 100.00")
	fs.StringVar(&c.exportPath, "export", "", "write limits as CSV to this file")
	fs.StringVar(&c.importPath, "import", "", "read limits from a category,limit CSV file")
	fs.BoolVar(&c.suggest, "suggest", false, "suggest limits from the last three months of spending")
	fs.IntVar(&c.month, "month", 0, "month the suggestion is for (1-12), defaults to the current month")
	fs.IntVar(&c.year, "year", 0, "year the suggestion is for, defaults to the current year")
}

func (c *limitsCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
) error {
	lang := cli.Language(conf)

	switch {
	case c.set != "":
		return c.runSet(ctx, out, lang, store)
	case c.exportPath != "":
		return c.runExport(ctx, store, log)
	case c.importPath != "":
		return c.runImport(ctx, out, lang, store, log)
	case c.suggest:
		return c.runSuggest(ctx, out, lang, store)
	default:
		return c.runList(ctx, out, lang, store)
	}
}

func (c *limitsCommand) runSet(ctx context.Context, out io.Writer, lang i18n.Lang, store storage.Store) error {
	cents, err := expense.ParseAmount(c.amount)
	if err != nil {
		return err
	}

	if err = store.SetLimit(ctx, c.set, cents); err != nil {
		return err
	}

	fmt.Fprintln(out, i18n.T(lang, "budget_limit_updated"))

	return nil
}

func (c *limitsCommand) runList(ctx context.Context, out io.Writer, lang i18n.Lang, store storage.Store) error {
	limits, err := store.Limits(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, i18n.T(lang, "limits_header"))

	if len(limits) == 0 {
		fmt.Fprintln(out, i18n.T(lang, "no_limits_set"))
		return nil
	}

	categories := maps.Keys(limits)
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintln(out, i18n.Tf(lang, "limit_line", category, cli.Money(limits[category])))
	}

	return nil
}

func (c *limitsCommand) runExport(ctx context.Context, store storage.Store, log *logger.Logger) error {
	limits, err := store.Limits(ctx)
	if err != nil {
		return err
	}

	file, err := os.Create(c.exportPath)
	if err != nil {
		return &storage.StorageError{Op: "export limits csv", Err: err}
	}
	defer file.Close()

	count, err := export.LimitsCSV(file, limits)
	if err != nil {
		return err
	}

	log.Info("limits exported", "path", c.exportPath, "count", count)

	return nil
}

func (c *limitsCommand) runImport(
	ctx context.Context,
	out io.Writer,
	lang i18n.Lang,
	store storage.Store,
	log *logger.Logger,
) error {
	file, err := os.Open(c.importPath)
	if err != nil {
		return &storage.StorageError{Op: "import limits csv", Err: err}
	}
	defer file.Close()

	limits, err := export.ReadLimitsCSV(file)
	if err != nil {
		return err
	}

	for category, cents := range limits {
		if err = store.SetLimit(ctx, category, cents); err != nil {
			return err
		}
	}

	log.Info("limits imported", "path", c.importPath, "count", len(limits))
	fmt.Fprintln(out, i18n.T(lang, "import_done"))

	return nil
}

func (c *limitsCommand) runSuggest(ctx context.Context, out io.Writer, lang i18n.Lang, store storage.Store) error {
	expenses, err := store.Expenses(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	month := c.month
	year := c.year
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return &expense.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	if year == 0 {
		year = now.Year()
	}

	suggestions := report.SuggestLimits(expenses, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))

	fmt.Fprintln(out, i18n.T(lang, "suggestions_header"))

	categories := maps.Keys(suggestions)
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintln(out, i18n.Tf(lang, "limit_line", category, cli.Money(suggestions[category])))
	}

	return nil
}
