package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
)

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

type StorageConfig struct {
	Backend      Backend `toml:"backend"`
	DB           string  `toml:"db"`
	ExpensesFile string  `toml:"expenses_file"`
	LimitsFile   string  `toml:"limits_file"`
}

type Config struct {
	Storage         StorageConfig `toml:"storage"`
	Language        string        `toml:"language"`
	WarningFraction float64       `toml:"warning_fraction"`
	Logger          logger.Config `toml:"logger"`
}

const (
	defaultBackend         = BackendJSON
	defaultDB              = "expenses.db"
	defaultExpensesFile    = "expenses.json"
	defaultLimitsFile      = "budget_limits.json"
	defaultLanguage        = "en"
	defaultWarningFraction = 0.8
	defaultLogLevel        = logger.LevelInfo
	defaultLogFormat       = logger.FormatText
	defaultLogOutput       = "stderr"
)

// Parse reads the TOML configuration file and applies environment overrides.
// A missing file is not an error; defaults apply. A .env file in the working
// directory is loaded first, if present.
func Parse(file string) (*Config, error) {
	// ignore a missing .env, it is optional
	_ = godotenv.Load()

	conf := &Config{}

	bytes, err := os.ReadFile(file)
	if err == nil {
		if err = toml.Unmarshal(bytes, conf); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", file, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.parseEnv()
	conf.applyDefaults()

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseEnv() {
	if backend := os.Getenv("EXPENSEANALYZER_BACKEND"); backend != "" {
		c.Storage.Backend = Backend(backend)
	}

	if db := os.Getenv("EXPENSEANALYZER_DB"); db != "" {
		c.Storage.DB = db
	}

	if f := os.Getenv("EXPENSEANALYZER_EXPENSES_FILE"); f != "" {
		c.Storage.ExpensesFile = f
	}

	if f := os.Getenv("EXPENSEANALYZER_LIMITS_FILE"); f != "" {
		c.Storage.LimitsFile = f
	}

	if lang := os.Getenv("EXPENSEANALYZER_LANG"); lang != "" {
		c.Language = lang
	}

	if fraction := os.Getenv("EXPENSEANALYZER_WARNING_FRACTION"); fraction != "" {
		if v, err := strconv.ParseFloat(fraction, 64); err == nil {
			c.WarningFraction = v
		}
	}

	if level := os.Getenv("EXPENSEANALYZER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSEANALYZER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSEANALYZER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if c.Storage.DB == "" {
		c.Storage.DB = defaultDB
	}
	if c.Storage.ExpensesFile == "" {
		c.Storage.ExpensesFile = defaultExpensesFile
	}
	if c.Storage.LimitsFile == "" {
		c.Storage.LimitsFile = defaultLimitsFile
	}
	if c.Language == "" {
		c.Language = defaultLanguage
	}
	if c.WarningFraction == 0 {
		c.WarningFraction = defaultWarningFraction
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}
	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}
	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unsupported storage backend %q", c.Storage.Backend)
	}

	if c.WarningFraction <= 0 || c.WarningFraction > 1 {
		return fmt.Errorf("warning_fraction must be in (0, 1], got %v", c.WarningFraction)
	}

	return nil
}
