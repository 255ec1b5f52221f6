package storage

import (
	"context"
	"fmt"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
)

type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "record not found"
}

// StorageError wraps a failure of the backing file or database. Load-time
// corruption surfaces as a StorageError rather than as an empty store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store owns the canonical expense list and the per-category monthly limits.
// Every other component receives read-only slices and maps and returns newly
// computed values.
type Store interface {
	// Expenses returns all records ordered by date then insertion order.
	Expenses(ctx context.Context) ([]expense.Expense, error)
	// AddExpense validates the record, persists it and returns the assigned id.
	AddExpense(ctx context.Context, e expense.Expense) (int64, error)
	// DeleteExpense removes a record by id, NotFoundError when absent.
	DeleteExpense(ctx context.Context, id int64) error

	// Limits returns the monthly limit per category, in cents.
	Limits(ctx context.Context) (map[string]int64, error)
	// SetLimit creates or overwrites the limit for a category. The amount
	// must be positive.
	SetLimit(ctx context.Context, category string, cents int64) error

	Close() error
}

// ValidateLimit guards SetLimit implementations.
func ValidateLimit(category string, cents int64) error {
	if category == "" {
		return &expense.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if cents <= 0 {
		return &expense.ValidationError{Field: "limit", Reason: "must be positive"}
	}
	return nil
}
