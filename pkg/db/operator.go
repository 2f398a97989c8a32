package db

import (
	"context"

	"github.com/gnames/winedb/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic database management operations.
// It owns the connection for the lifetime of the process: opened once at
// startup by Connect, released at teardown by Close. Schema migrations,
// fixtures and lookups receive the Operator instead of reaching for a
// process-wide connection.
type Operator interface {
	// Connect opens the database described by the config.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the database connection.
	Close() error

	// DB returns the GORM handle, or nil before Connect.
	DB() *gorm.DB

	// Driver returns the name of the connected engine.
	Driver() string

	// Tables lists user tables of the database.
	Tables(ctx context.Context) ([]string, error)

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	HasTables(ctx context.Context) (bool, error)

	// CountRows returns the number of rows in a table.
	CountRows(ctx context.Context, tableName string) (int64, error)
}
