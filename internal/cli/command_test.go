package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/GustavoCaso/expenseanalyzer/internal/config"
	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/i18n"
	"github.com/GustavoCaso/expenseanalyzer/internal/report"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     i18n.Lang
	}{
		{
			name:     "supported language",
			language: "fr",
			want:     i18n.French,
		},
		{
			name:     "unsupported language falls back to english",
			language: "de",
			want:     i18n.English,
		},
		{
			name:     "empty language falls back to english",
			language: "",
			want:     i18n.English,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := &config.Config{Language: test.language}
			if got := Language(conf); got != test.want {
				t.Errorf("Language() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1250, "$12.50"},
		{1234567, "$12,345.67"},
	}

	for _, test := range tests {
		if got := Money(test.cents); got != test.want {
			t.Errorf("Money(%d) = %q, want %q", test.cents, got, test.want)
		}
	}
}

func TestRenderExpenses(t *testing.T) {
	expenses := []expense.Expense{
		{
			Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Category: "Food",
			Amount:   1250,
			Note:     "lunch",
		},
		{
			Date:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Category: "Transport",
			Amount:   300,
		},
	}

	var out bytes.Buffer
	RenderExpenses(&out, i18n.English, expenses)

	want := "2024-03-01  Food  $12.50 (lunch)\n" +
		"2024-03-02  Transport  $3.00\n" +
		"Total expenses: $15.50\n"

	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRenderExpensesEmpty(t *testing.T) {
	var out bytes.Buffer
	RenderExpenses(&out, i18n.English, nil)

	if !strings.Contains(out.String(), "No expenses found for this period.") {
		t.Errorf("output = %q, want the empty message", out.String())
	}
}

func TestRenderSummary(t *testing.T) {
	summary := report.Summary{
		Categories: []report.CategoryTotal{
			{Category: "Food", Amount: 2050},
			{Category: "Transport", Amount: 300},
		},
		Total: 2350,
	}

	var out bytes.Buffer
	RenderSummary(&out, i18n.Spanish, summary)

	want := "=== Resumen de Gastos ===\n" +
		"Categoría: Food, Total: $20.50\n" +
		"Categoría: Transport, Total: $3.00\n" +
		"Gastos totales: $23.50\n"

	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRenderBudget(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	rep := report.BudgetReport{
		Categories: []report.CategoryBudget{
			{Category: "Food", Spent: 12030, Limit: 10000, Ratio: 1.203, Status: report.BudgetStatusExceeded},
			{Category: "Rent", Spent: 8000, Limit: 10000, Ratio: 0.8, Status: report.BudgetStatusWarning},
			{Category: "Transport", Spent: 2000, Limit: 10000, Ratio: 0.2, Status: report.BudgetStatusOK},
		},
		Unmonitored: []report.CategoryTotal{
			{Category: "Fun", Amount: 4000},
		},
	}

	var out bytes.Buffer
	RenderBudget(&out, i18n.English, rep)

	want := "=== Budget Check ===\n" +
		"Food: $120.30 / $100.00 (120%) Over budget for Food!\n" +
		"Rent: $80.00 / $100.00 (80%) Nearing the limit for Rent.\n" +
		"Transport: $20.00 / $100.00 (20%) Within budget for Transport.\n" +
		"No limit configured for Fun (spent $40.00).\n"

	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
