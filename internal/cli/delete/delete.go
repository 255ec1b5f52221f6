package delete

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
)

type deleteCommand struct {
	id int64
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Delete an expense by id"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.id, "id", 0, "id of the expense to delete")
}

func (c *deleteCommand) Run(
	ctx context.Context,
	out io.Writer,
	store storage.Store,
	conf *config.Config,
	log *logger.Logger,
) error {
	if c.id <= 0 {
		return &expense.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}

	if err := store.DeleteExpense(ctx, c.id); err != nil {
		return err
	}

	log.Debug("expense deleted", "id", c.id)
	fmt.Fprintln(out, i18n.T(cli.Language(conf), "expense_deleted"))

	return nil
}
