package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GustavoCaso/expenseanalyzer/internal/cli"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/add"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/budget"
	deleteCmd "github.com/GustavoCaso/expenseanalyzer/internal/cli/delete"
	exportCmd "github.com/GustavoCaso/expenseanalyzer/internal/cli/export"
	importCmd "github.com/GustavoCaso/expenseanalyzer/internal/cli/import"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/limits"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/list"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/migrate"
	"github.com/GustavoCaso/expenseanalyzer/internal/cli/summary"
	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage/jsonfile"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage/sqlite"
)

var configPath string
var language string

var subcommands = map[string]cli.Command{
	"add":     add.NewCommand(),
	"list":    list.NewCommand(),
	"summary": summary.NewCommand(),
	"budget":  budget.NewCommand(),
	"limits":  limits.NewCommand(),
	"export":  exportCmd.NewCommand(),
	"import":  importCmd.NewCommand(),
	"delete":  deleteCmd.NewCommand(),
	"migrate": migrate.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "expenseanalyzer.toml", "Configuration file")
		fset.StringVar(&language, "lang", "", "Output language (en, fr, es)")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "unsupported command %s. \nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse flags: %s\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	if language != "" {
		conf.Language = language
	}

	appLogger := logger.New(conf.Logger)

	store, err := openStore(conf, appLogger)
	if err != nil {
		appLogger.Fatal("unable to open storage", "error", err.Error())
	}

	err = command.Run(context.Background(), os.Stdout, store, conf, appLogger)

	if closeErr := store.Close(); closeErr != nil {
		appLogger.Error("error closing storage", "error", closeErr.Error())
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func openStore(conf *config.Config, log *logger.Logger) (storage.Store, error) {
	switch conf.Storage.Backend {
	case config.BackendSQLite:
		log.Debug("using sqlite storage", "path", conf.Storage.DB)
		return sqlite.New(conf.Storage.DB, log)
	default:
		log.Debug("using json storage",
			"expenses", conf.Storage.ExpensesFile,
			"limits", conf.Storage.LimitsFile)
		return jsonfile.New(conf.Storage.ExpensesFile, conf.Storage.LimitsFile)
	}
}

func printHelp() {
	printUsage()

	for c, cLogic := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", c, cLogic.Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: expenseanalyzer <subcommand> [flags]\n\n")
}
