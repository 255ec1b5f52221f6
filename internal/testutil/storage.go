package testutil

import (
	"path/filepath"
	"testing"

	"github.com/GustavoCaso/expenseanalyzer/internal/storage"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage/jsonfile"
	"github.com/GustavoCaso/expenseanalyzer/internal/storage/sqlite"
)

// SetupTestStorage returns an in-memory sqlite store with the schema applied.
func SetupTestStorage(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(":memory:", TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return store
}

// SetupJSONStorage returns a json-file store rooted in a temp directory,
// plus the paths of its two backing files.
func SetupJSONStorage(t *testing.T) (storage.Store, string, string) {
	t.Helper()

	dir := t.TempDir()
	expensesPath := filepath.Join(dir, "expenses.json")
	limitsPath := filepath.Join(dir, "budget_limits.json")

	store, err := jsonfile.New(expensesPath, limitsPath)
	if err != nil {
		t.Fatalf("Failed to open json storage: %v", err)
	}

	return store, expensesPath, limitsPath
}
