package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/CryptoShield-Backend/internal/database"
)

// SetupTestDB creates an in-memory SQLite database for testing with all
// migrations applied, including the seeded recommendation catalog.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := openMemoryDB(t)

	if err := database.Migrate(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// SetupEmptyTestDB creates a migrated in-memory database with the seeded
// catalog removed, for tests that insert their own recommendations.
func SetupEmptyTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := SetupTestDB(t)
	if _, err := db.Exec(`DELETE FROM recommendation`); err != nil {
		t.Fatalf("Failed to clear recommendation table: %v", err)
	}
	return db
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to set pragma: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}
