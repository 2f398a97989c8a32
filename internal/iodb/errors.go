package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/config"
	"github.com/gnames/winedb/pkg/errcode"
)

// ConnectionError creates an error for failed database
// connections.
func ConnectionError(cfg *config.DatabaseConfig, err error) error {
	msg := `Cannot connect to <em>%s</em> database <em>%s</em>

<em>Possible causes:</em>
  - Database server is not running
  - SQLite file is not writable
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check the database section of config.yaml
  2. Verify WINEDB_DATABASE_* environment variables
  3. For PostgreSQL run: pg_isready -h %s -p %d`

	vars := []any{cfg.Driver, cfg.Address(), cfg.Host, cfg.Port}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s %s: %w",
			cfg.Driver, cfg.Address(), err),
	}
}

// UnknownDriverError creates an error for unsupported
// database drivers.
func UnknownDriverError(driver string) error {
	msg := "Database driver <em>%s</em> is not supported, " +
		"use 'sqlite' or 'postgres'"

	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("unknown database driver %q", driver),
	}
}

// NotConnectedError creates an error for when a database
// operation is attempted without a connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryTablesError creates an error for failures to list
// tables.
func QueryTablesError(err error) error {
	msg := "Cannot list database tables"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// TableExistsCheckError creates an error for failures to
// check a table.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: []any{table},
		Err: fmt.Errorf("failed to check table %s: %w",
			table, err),
	}
}

// CountRowsError creates an error for failed row counts.
func CountRowsError(table string, err error) error {
	msg := "Cannot count rows of <em>%s</em>"

	return &gn.Error{
		Code: errcode.DBCountRowsError,
		Msg:  msg,
		Vars: []any{table},
		Err: fmt.Errorf("failed to count rows of %s: %w",
			table, err),
	}
}
