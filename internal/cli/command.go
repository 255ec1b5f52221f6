package cli

import (
	"context"
	"flag"
	"io"

	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, out io.Writer, store storage.Store, conf *config.Config, log *logger.Logger) error
}

// Language resolves the configured language, falling back to English for
// anything the message tables do not know.
func Language(conf *config.Config) i18n.Lang {
	lang := i18n.Lang(conf.Language)
	if !i18n.Supported(lang) {
		return i18n.DefaultLang
	}
	return lang
}
