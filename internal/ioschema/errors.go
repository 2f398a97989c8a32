package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/errcode"
	"github.com/gnames/winedb/pkg/lifecycle"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// SchemaConflictError creates an error for a table that
// exists before the migration created it.
func SchemaConflictError(migration, table string) error {
	msg := `Cannot apply <em>%s</em> schema, table <em>%s</em> already exists

<em>How to fix:</em>
  1. Use an empty database
  2. Or drop existing tables manually`

	vars := []any{migration, table}

	return &gn.Error{
		Code: errcode.SchemaConflictError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: %s migration, table %s exists",
			lifecycle.ErrSchemaConflict, migration, table),
	}
}

// MissingDependencyError creates an error for a table the
// migration refers to but which does not exist.
func MissingDependencyError(migration, table string) error {
	msg := `Cannot apply <em>%s</em> schema, required table <em>%s</em> is missing

<em>How to fix:</em>
  1. Apply world and log schemas first
  2. Or run 'winedb create' on an empty database`

	vars := []any{migration, table}

	return &gn.Error{
		Code: errcode.SchemaMissingDependencyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: %s migration requires table %s",
			lifecycle.ErrMissingDependency, migration, table),
	}
}

// IrreversibleError creates an error for an attempt to
// revert a migration.
func IrreversibleError(migration string) error {
	msg := `Schema <em>%s</em> cannot be reverted

Reverting would destroy data that cannot be recreated.
Drop the database manually if you really need to start over.`

	vars := []any{migration}

	return &gn.Error{
		Code: errcode.SchemaIrreversibleError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: %s",
			lifecycle.ErrIrreversible, migration),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(migration string, err error) error {
	msg := `Cannot create <em>%s</em> schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Invalid schema definitions

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Check database logs for details`

	vars := []any{migration}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to create %s schema: %w",
			migration, err),
	}
}
