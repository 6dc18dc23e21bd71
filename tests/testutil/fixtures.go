package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"pennyledger/internal/infrastructure/postgres"
)

// TestDB provides a database-backed gateway for integration tests.
// Tests are skipped unless DATABASE_URL points at a reachable store.
type TestDB struct {
	Gateway *postgres.Gateway
	t       *testing.T
}

// NewTestDB runs migrations and connects to the test database.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	migrationsPath := "../../migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "migrations"
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	gateway := postgres.NewGateway(postgres.GatewayConfig{
		DatabaseURL:    dbURL,
		ConnectTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := gateway.Ping(ctx); err != nil {
		gateway.Close()
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{Gateway: gateway, t: t}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Gateway.Close()
}

// TruncateEntries removes all rows from the entries table.
func (db *TestDB) TruncateEntries(ctx context.Context) {
	db.t.Helper()

	pool, err := db.Gateway.Acquire(ctx)
	if err != nil {
		db.t.Fatalf("failed to acquire pool: %v", err)
	}

	if _, err := pool.Exec(ctx, "TRUNCATE entries"); err != nil {
		db.t.Fatalf("failed to truncate entries: %v", err)
	}
}
