// Package export serializes records to CSV and reads them back. Quoting is
// RFC-4180 via encoding/csv, so commas and quotes inside notes round-trip
// intact.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

var expensesHeader = []string{"date", "category", "amount", "note"}

var limitsHeader = []string{"category", "limit"}

// CSV writes one header line followed by one line per record in the given
// order. It returns the number of records written.
func CSV(writer io.Writer, expenses []expense.Expense) (int, error) {
	w := csv.NewWriter(writer)

	if err := w.Write(expensesHeader); err != nil {
		return 0, &storage.StorageError{Op: "export csv", Err: err}
	}

	for i, e := range expenses {
		record := []string{
			expense.FormatDate(e.Date),
			e.Category,
			expense.FormatAmount(e.Amount),
			e.Note,
		}
		if err := w.Write(record); err != nil {
			return i, &storage.StorageError{Op: "export csv", Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, &storage.StorageError{Op: "export csv", Err: err}
	}

	return len(expenses), nil
}

// ReadCSV parses a CSV stream produced by CSV back into records.
func ReadCSV(reader io.Reader) ([]expense.Expense, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = len(expensesHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &storage.StorageError{Op: "import csv", Err: err}
	}

	if len(rows) == 0 {
		return nil, &storage.StorageError{Op: "import csv", Err: fmt.Errorf("missing header row")}
	}

	expenses := make([]expense.Expense, 0, len(rows)-1)
	for i, row := range rows[1:] {
		date, err := expense.ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		amount, err := expense.ParseAmount(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		e, err := expense.New(date, row[1], amount, row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		expenses = append(expenses, e)
	}

	return expenses, nil
}

// LimitsCSV writes limits as category,limit rows sorted by category.
func LimitsCSV(writer io.Writer, limits map[string]int64) (int, error) {
	w := csv.NewWriter(writer)

	if err := w.Write(limitsHeader); err != nil {
		return 0, &storage.StorageError{Op: "export limits csv", Err: err}
	}

	categories := make([]string, 0, len(limits))
	for category := range limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if err := w.Write([]string{category, expense.FormatAmount(limits[category])}); err != nil {
			return 0, &storage.StorageError{Op: "export limits csv", Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, &storage.StorageError{Op: "export limits csv", Err: err}
	}

	return len(categories), nil
}

// ReadLimitsCSV parses a category,limit CSV stream into a limits map.
func ReadLimitsCSV(reader io.Reader) (map[string]int64, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = len(limitsHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &storage.StorageError{Op: "import limits csv", Err: err}
	}

	if len(rows) == 0 {
		return nil, &storage.StorageError{Op: "import limits csv", Err: fmt.Errorf("missing header row")}
	}

	limits := make(map[string]int64, len(rows)-1)
	for i, row := range rows[1:] {
		cents, err := expense.ParseAmount(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		limits[row[0]] = cents
	}

	return limits, nil
}
