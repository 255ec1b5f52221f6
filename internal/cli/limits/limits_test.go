package limits

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{Language: "en", WarningFraction: 0.8}
}

func run(t *testing.T, store storage.Store, conf *config.Config, args []string) (string, error) {
	t.Helper()

	cmd := NewCommand()
	fs := flag.NewFlagSet("limits", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	var out bytes.Buffer
	err := cmd.Run(context.Background(), &out, store, conf, testutil.TestLogger(t))
	return out.String(), err
}

func TestDescription(t *testing.T) {
	if NewCommand().Description() == "" {
		t.Error("Description() returned an empty string")
	}
}

func TestRunSet(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)

	out, err := run(t, store, testConfig(), []string{"-set", "Food", "-amount", "100.00"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out, "Budget limit updated successfully!") {
		t.Errorf("output = %q, want the confirmation message", out)
	}

	limits, err := store.Limits(ctx)
	if err != nil {
		t.Fatalf("Limits() unexpected error: %v", err)
	}

	if limits["Food"] != 10000 {
		t.Errorf("limit for Food = %d, want 10000", limits["Food"])
	}
}

func TestRunSetInvalidAmount(t *testing.T) {
	store := testutil.SetupTestStorage(t)

	for _, amount := range []string{"", "abc", "-5.00", "0"} {
		_, err := run(t, store, testConfig(), []string{"-set", "Food", "-amount", amount})
		if err == nil {
			t.Errorf("Run() with amount %q expected error, got nil", amount)
			continue
		}

		var validationErr *expense.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Run() with amount %q error = %T, want *ValidationError", amount, err)
		}
	}
}

func TestRunList(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)

	if err := store.SetLimit(ctx, "Transport", 5000); err != nil {
		t.Fatalf("SetLimit() unexpected error: %v", err)
	}
	if err := store.SetLimit(ctx, "Food", 10000); err != nil {
		t.Fatalf("SetLimit() unexpected error: %v", err)
	}

	out, err := run(t, store, testConfig(), nil)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"=== Budget Limits ===",
		"Category: Food, Limit: $100.00",
		"Category: Transport, Limit: $50.00",
	}

	if len(lines) != len(want) {
		t.Fatalf("output has %d lines, want %d\ngot: %s", len(lines), len(want), out)
	}

	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestRunListEmpty(t *testing.T) {
	store := testutil.SetupTestStorage(t)

	out, err := run(t, store, testConfig(), nil)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out, "No budget limits have been set.") {
		t.Errorf("output = %q, want the empty message", out)
	}
}

func TestRunExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)

	if err := store.SetLimit(ctx, "Food", 10000); err != nil {
		t.Fatalf("SetLimit() unexpected error: %v", err)
	}
	if err := store.SetLimit(ctx, "Transport", 5000); err != nil {
		t.Fatalf("SetLimit() unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "limits.csv")

	if _, err := run(t, store, testConfig(), []string{"-export", path}); err != nil {
		t.Fatalf("Run() export unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}

	want := "category,limit\nFood,100.00\nTransport,50.00\n"
	if string(data) != want {
		t.Errorf("exported CSV = %q, want %q", string(data), want)
	}

	// importing into a fresh store restores the same limits
	fresh := testutil.SetupTestStorage(t)

	out, err := run(t, fresh, testConfig(), []string{"-import", path})
	if err != nil {
		t.Fatalf("Run() import unexpected error: %v", err)
	}

	if !strings.Contains(out, "Limits imported from CSV.") {
		t.Errorf("output = %q, want the import confirmation", out)
	}

	limits, err := fresh.Limits(ctx)
	if err != nil {
		t.Fatalf("Limits() unexpected error: %v", err)
	}

	if limits["Food"] != 10000 || limits["Transport"] != 5000 {
		t.Errorf("imported limits = %v", limits)
	}
}

func TestRunImportMissingFile(t *testing.T) {
	store := testutil.SetupTestStorage(t)

	_, err := run(t, store, testConfig(), []string{"-import", filepath.Join(t.TempDir(), "nope.csv")})
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	var storageErr *storage.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("Run() error = %T, want *StorageError", err)
	}
}

func TestRunSuggest(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)

	// three months of Food spending before April 2024: 100, 200 and 300
	months := []struct {
		day   string
		cents int64
	}{
		{"2024-01-10", 10000},
		{"2024-02-10", 20000},
		{"2024-03-10", 30000},
	}

	for _, m := range months {
		date, err := expense.ParseDate(m.day)
		if err != nil {
			t.Fatalf("ParseDate() unexpected error: %v", err)
		}

		e, err := expense.New(date, "Food", m.cents, "")
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		if _, err = store.AddExpense(ctx, e); err != nil {
			t.Fatalf("AddExpense() unexpected error: %v", err)
		}
	}

	out, err := run(t, store, testConfig(), []string{"-suggest", "-month", "4", "-year", "2024"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out, "Suggestions (last 3 months)") {
		t.Errorf("output missing the suggestions header\ngot: %s", out)
	}

	if !strings.Contains(out, "Category: Food, Limit: $200.00") {
		t.Errorf("output = %q, want the three month average", out)
	}
}
