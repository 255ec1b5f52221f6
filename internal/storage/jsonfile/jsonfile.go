// Package jsonfile persists the store as two flat JSON files: an ordered
// array of expense records and a category to monthly limit mapping. The whole
// state is rewritten on every mutation, using write-to-temp-then-rename so a
// crash mid-save never truncates the previous file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type record struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
}

type jsonStore struct {
	expensesPath string
	limitsPath   string

	mu       sync.Mutex
	expenses []expense.Expense
	limits   map[string]int64
	nextID   int64
}

func New(expensesPath, limitsPath string) (storage.Store, error) {
	s := &jsonStore{
		expensesPath: expensesPath,
		limitsPath:   limitsPath,
		limits:       map[string]int64{},
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// load reads both files. A missing file means an empty store; anything else
// that fails to read or decode is a StorageError.
func (s *jsonStore) load() error {
	data, err := os.ReadFile(s.expensesPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return &storage.StorageError{Op: "load expenses", Err: err}
	default:
		var records []record
		if err = json.Unmarshal(data, &records); err != nil {
			return &storage.StorageError{Op: "load expenses", Err: err}
		}

		s.expenses = make([]expense.Expense, 0, len(records))
		for i, r := range records {
			e, convErr := recordToExpense(r)
			if convErr != nil {
				return &storage.StorageError{
					Op:  "load expenses",
					Err: fmt.Errorf("record %d: %w", i, convErr),
				}
			}
			// ids are positional and reassigned on every load
			e.ID = int64(i + 1)
			s.expenses = append(s.expenses, e)
		}
		s.nextID = int64(len(records))
	}

	data, err = os.ReadFile(s.limitsPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return &storage.StorageError{Op: "load limits", Err: err}
	}

	var limits map[string]float64
	if err = json.Unmarshal(data, &limits); err != nil {
		return &storage.StorageError{Op: "load limits", Err: err}
	}

	for category, value := range limits {
		s.limits[category] = toCents(value)
	}

	return nil
}

func (s *jsonStore) Expenses(_ context.Context) ([]expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]expense.Expense, len(s.expenses))
	copy(out, s.expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *jsonStore) AddExpense(_ context.Context, e expense.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	e.ID = s.nextID
	s.expenses = append(s.expenses, e)

	if err := s.saveExpenses(); err != nil {
		// roll the in-memory state back so a failed persist does not mutate it
		s.expenses = s.expenses[:len(s.expenses)-1]
		s.nextID--
		return 0, err
	}

	return e.ID, nil
}

func (s *jsonStore) DeleteExpense(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return s.saveExpenses()
		}
	}

	return &storage.NotFoundError{}
}

func (s *jsonStore) Limits(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.limits))
	for category, cents := range s.limits {
		out[category] = cents
	}
	return out, nil
}

func (s *jsonStore) SetLimit(_ context.Context, category string, cents int64) error {
	if err := storage.ValidateLimit(category, cents); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.limits[category]
	s.limits[category] = cents

	if err := s.saveLimits(); err != nil {
		if existed {
			s.limits[category] = previous
		} else {
			delete(s.limits, category)
		}
		return err
	}

	return nil
}

func (s *jsonStore) Close() error {
	return nil
}

func (s *jsonStore) saveExpenses() error {
	records := make([]record, len(s.expenses))
	for i, e := range s.expenses {
		records[i] = record{
			Date:     expense.FormatDate(e.Date),
			Category: e.Category,
			Amount:   fromCents(e.Amount),
			Note:     e.Note,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &storage.StorageError{Op: "save expenses", Err: err}
	}

	return writeAtomic(s.expensesPath, data, "save expenses")
}

func (s *jsonStore) saveLimits() error {
	limits := make(map[string]float64, len(s.limits))
	for category, cents := range s.limits {
		limits[category] = fromCents(cents)
	}

	data, err := json.MarshalIndent(limits, "", "  ")
	if err != nil {
		return &storage.StorageError{Op: "save limits", Err: err}
	}

	return writeAtomic(s.limitsPath, data, "save limits")
}

// writeAtomic writes to a temp file in the destination directory and renames
// it over the target, so readers never observe a truncated file.
func writeAtomic(path string, data []byte, op string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &storage.StorageError{Op: op, Err: err}
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &storage.StorageError{Op: op, Err: err}
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &storage.StorageError{Op: op, Err: err}
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &storage.StorageError{Op: op, Err: err}
	}

	return nil
}

func recordToExpense(r record) (expense.Expense, error) {
	date, err := expense.ParseDate(r.Date)
	if err != nil {
		return expense.Expense{}, err
	}

	return expense.New(date, r.Category, toCents(r.Amount), r.Note)
}

// toCents converts a JSON decimal amount to cents, rounding half away from
// zero on anything beyond two decimals.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
