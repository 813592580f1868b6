package storage

import (
	"path/filepath"
	"testing"

	"github.com/marek/mastermind-api/internal/database"
	"github.com/marek/mastermind-api/internal/kvstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(kvstore.New(db))
}
