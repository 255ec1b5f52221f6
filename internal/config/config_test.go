package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "expenseanalyzer.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	return path
}

func TestParseDefaults(t *testing.T) {
	// the file does not exist, everything falls back to defaults
	conf, err := Parse(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if conf.Storage.Backend != BackendJSON {
		t.Errorf("Backend = %q, want %q", conf.Storage.Backend, BackendJSON)
	}

	if conf.Storage.ExpensesFile != "expenses.json" {
		t.Errorf("ExpensesFile = %q, want expenses.json", conf.Storage.ExpensesFile)
	}

	if conf.Storage.LimitsFile != "budget_limits.json" {
		t.Errorf("LimitsFile = %q, want budget_limits.json", conf.Storage.LimitsFile)
	}

	if conf.Storage.DB != "expenses.db" {
		t.Errorf("DB = %q, want expenses.db", conf.Storage.DB)
	}

	if conf.Language != "en" {
		t.Errorf("Language = %q, want en", conf.Language)
	}

	if conf.WarningFraction != 0.8 {
		t.Errorf("WarningFraction = %v, want 0.8", conf.WarningFraction)
	}

	if conf.Logger.Level != logger.LevelInfo {
		t.Errorf("Logger.Level = %q, want info", conf.Logger.Level)
	}

	if conf.Logger.Output != "stderr" {
		t.Errorf("Logger.Output = %q, want stderr", conf.Logger.Output)
	}
}

func TestParseTOMLFile(t *testing.T) {
	path := writeConfig(t, `
language = "fr"
warning_fraction = 0.9

[storage]
backend = "sqlite"
db = "finance.db"

[logger]
level = "debug"
format = "json"
output = "discard"
`)

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if conf.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want %q", conf.Storage.Backend, BackendSQLite)
	}

	if conf.Storage.DB != "finance.db" {
		t.Errorf("DB = %q, want finance.db", conf.Storage.DB)
	}

	if conf.Language != "fr" {
		t.Errorf("Language = %q, want fr", conf.Language)
	}

	if conf.WarningFraction != 0.9 {
		t.Errorf("WarningFraction = %v, want 0.9", conf.WarningFraction)
	}

	if conf.Logger.Level != logger.LevelDebug {
		t.Errorf("Logger.Level = %q, want debug", conf.Logger.Level)
	}

	if conf.Logger.Format != logger.FormatJSON {
		t.Errorf("Logger.Format = %q, want json", conf.Logger.Format)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
language = "fr"

[storage]
backend = "json"
`)

	t.Setenv("EXPENSEANALYZER_BACKEND", "sqlite")
	t.Setenv("EXPENSEANALYZER_DB", "/tmp/override.db")
	t.Setenv("EXPENSEANALYZER_LANG", "es")
	t.Setenv("EXPENSEANALYZER_WARNING_FRACTION", "0.5")
	t.Setenv("EXPENSEANALYZER_LOG_LEVEL", "error")

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if conf.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want %q", conf.Storage.Backend, BackendSQLite)
	}

	if conf.Storage.DB != "/tmp/override.db" {
		t.Errorf("DB = %q, want /tmp/override.db", conf.Storage.DB)
	}

	if conf.Language != "es" {
		t.Errorf("Language = %q, want es", conf.Language)
	}

	if conf.WarningFraction != 0.5 {
		t.Errorf("WarningFraction = %v, want 0.5", conf.WarningFraction)
	}

	if conf.Logger.Level != logger.LevelError {
		t.Errorf("Logger.Level = %q, want error", conf.Logger.Level)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	path := writeConfig(t, "language = [broken")

	if _, err := Parse(path); err == nil {
		t.Error("Parse() expected error for malformed TOML, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown backend",
			content: `
[storage]
backend = "postgres"
`,
		},
		{
			name:    "warning fraction above one",
			content: `warning_fraction = 1.5`,
		},
		{
			name:    "warning fraction negative",
			content: `warning_fraction = -0.2`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfig(t, test.content)

			if _, err := Parse(path); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestWarningFractionOfOneIsValid(t *testing.T) {
	path := writeConfig(t, `warning_fraction = 1.0`)

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if conf.WarningFraction != 1.0 {
		t.Errorf("WarningFraction = %v, want 1.0", conf.WarningFraction)
	}
}
