package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/GustavoCaso/expenseanalyzer/internal/logger"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
)

// migrations are applied in order; the schema_migrations table records the
// last applied version. Append only, never edit an entry that shipped.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		date     TEXT    NOT NULL,
		category TEXT    NOT NULL,
		amount   INTEGER NOT NULL,
		note     TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
	`CREATE TABLE IF NOT EXISTS budget_limits (
		category      TEXT    PRIMARY KEY,
		monthly_limit INTEGER NOT NULL
	)`,
}

// ApplyMigrations brings the schema up to the current version. Safe to run
// on every startup.
func (s *sqliteStore) ApplyMigrations(ctx context.Context, log *logger.Logger) error {
	if err := createMigrationsTable(ctx, s.db); err != nil {
		return &storage.StorageError{Op: "migrate", Err: err}
	}

	current, err := currentVersion(ctx, s.db)
	if err != nil {
		return &storage.StorageError{Op: "migrate", Err: err}
	}

	for version := current; version < len(migrations); version++ {
		if err := applyMigration(ctx, s.db, version, migrations[version]); err != nil {
			return &storage.StorageError{Op: "migrate", Err: err}
		}

		log.Debug("applied migration", "version", version+1)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)
	`)
	return err
}

func currentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version sql.NullInt64
	err := db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}

	return int(version.Int64), nil
}

func applyMigration(ctx context.Context, db *sql.DB, version int, statement string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, statement); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return rErr
		}
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
		version+1, time.Now().Unix())
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return rErr
		}
		return err
	}

	return tx.Commit()
}
