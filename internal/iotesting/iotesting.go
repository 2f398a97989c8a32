// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"testing"

	"github.com/gnames/winedb/internal/ioconfig"
	"github.com/gnames/winedb/internal/iodb"
	"github.com/gnames/winedb/internal/ioschema"
	"github.com/gnames/winedb/internal/ioseed"
	"github.com/gnames/winedb/pkg/config"
	"github.com/gnames/winedb/pkg/db"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests, so they never touch a production database.
	TestDatabaseName = "winedb_test"
)

// GetTestConfig returns a PostgreSQL configuration for integration
// tests. Connection settings come from config.yaml and WINEDB_
// environment variables, the database name is always
// TestDatabaseName.
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... connect with cfg.Database
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()
	if home, err := os.UserHomeDir(); err == nil {
		if res, err := ioconfig.Load(home); err == nil {
			cfg.Update(res.ToOptions())
		}
	}

	cfg.Update([]config.Option{
		config.OptDatabaseDriver(config.DriverPostgres),
		config.OptDatabaseDatabase(TestDatabaseName),
	})
	return cfg
}

// MemoryConfig returns a database configuration of a private
// in-memory SQLite database.
func MemoryConfig() *config.DatabaseConfig {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver(config.DriverSQLite),
		config.OptDatabasePath(config.MemoryPath),
	})
	return &cfg.Database
}

// NewEmptyDB connects to a fresh in-memory SQLite database without
// any tables. The connection is closed when the test finishes.
func NewEmptyDB(t *testing.T) db.Operator {
	t.Helper()

	op := iodb.NewOperator()
	if err := op.Connect(context.Background(), MemoryConfig()); err != nil {
		t.Fatalf("Cannot connect to in-memory database: %v", err)
	}
	t.Cleanup(func() {
		_ = op.Close()
	})
	return op
}

// NewMemoryDB creates an in-memory SQLite database with world, log
// and wine schemas and the reference geography rows (Austria,
// Niederösterreich). The connection is closed when the test
// finishes.
func NewMemoryDB(t *testing.T) db.Operator {
	t.Helper()

	ctx := context.Background()
	op := NewEmptyDB(t)

	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		t.Fatalf("Cannot create schema: %v", err)
	}
	if _, err := ioseed.Seed(ctx, op.DB()); err != nil {
		t.Fatalf("Cannot seed fixtures: %v", err)
	}
	return op
}
