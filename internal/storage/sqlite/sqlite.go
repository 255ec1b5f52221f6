package sqlite

import (
	"context"
	"database/sql"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/GustavoCaso/expenseanalyzer/internal/expense"
	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

type sqliteStore struct {
	db *sql.DB
}

// New opens the database and brings the schema up to date.
func New(source string, log *logger.Logger) (storage.Store, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, &storage.StorageError{Op: "open", Err: err}
	}

	ctx := context.Background()

	// Enable foreign key constraints
	if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, &storage.StorageError{Op: "open", Err: err}
	}

	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, &storage.StorageError{Op: "open", Err: err}
	}

	s := &sqliteStore{db: db}

	if err = s.ApplyMigrations(ctx, log); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *sqliteStore) Expenses(ctx context.Context) ([]expense.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, category, amount, note FROM expenses ORDER BY date ASC, id ASC")
	if err != nil {
		return nil, &storage.StorageError{Op: "query expenses", Err: err}
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		var date string
		if err = rows.Scan(&e.ID, &date, &e.Category, &e.Amount, &e.Note); err != nil {
			return nil, &storage.StorageError{Op: "scan expense", Err: err}
		}

		e.Date, err = expense.ParseDate(date)
		if err != nil {
			return nil, &storage.StorageError{Op: "scan expense", Err: err}
		}

		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, &storage.StorageError{Op: "query expenses", Err: err}
	}

	return expenses, nil
}

func (s *sqliteStore) AddExpense(ctx context.Context, e expense.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	r, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses(date, category, amount, note) VALUES(?, ?, ?, ?)",
		expense.FormatDate(e.Date), e.Category, e.Amount, e.Note)
	if err != nil {
		return 0, &storage.StorageError{Op: "insert expense", Err: err}
	}

	id, err := r.LastInsertId()
	if err != nil {
		return 0, &storage.StorageError{Op: "insert expense", Err: err}
	}

	return id, nil
}

func (s *sqliteStore) DeleteExpense(ctx context.Context, id int64) error {
	r, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return &storage.StorageError{Op: "delete expense", Err: err}
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return &storage.StorageError{Op: "delete expense", Err: err}
	}

	if affected == 0 {
		return &storage.NotFoundError{}
	}

	return nil
}

func (s *sqliteStore) Limits(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT category, monthly_limit FROM budget_limits ORDER BY category ASC")
	if err != nil {
		return nil, &storage.StorageError{Op: "query limits", Err: err}
	}
	defer rows.Close()

	limits := map[string]int64{}
	for rows.Next() {
		var category string
		var cents int64
		if err = rows.Scan(&category, &cents); err != nil {
			return nil, &storage.StorageError{Op: "scan limit", Err: err}
		}
		limits[category] = cents
	}

	if err = rows.Err(); err != nil {
		return nil, &storage.StorageError{Op: "query limits", Err: err}
	}

	return limits, nil
}

func (s *sqliteStore) SetLimit(ctx context.Context, category string, cents int64) error {
	if err := storage.ValidateLimit(category, cents); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budget_limits (category, monthly_limit)
		 VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET monthly_limit=excluded.monthly_limit`,
		category, cents)
	if err != nil {
		return &storage.StorageError{Op: "upsert limit", Err: err}
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
