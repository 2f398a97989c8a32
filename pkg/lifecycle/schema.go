// Package lifecycle defines interfaces for creating and reverting
// WineDB database schemas.
package lifecycle

import (
	"context"
	"errors"
)

var (
	// ErrSchemaConflict means a table the migration creates
	// already exists.
	ErrSchemaConflict = errors.New("schema conflict")

	// ErrMissingDependency means a table the migration references
	// does not exist.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrIrreversible means a migration cannot be rolled back.
	ErrIrreversible = errors.New("irreversible migration")
)

// Migration is a one-shot schema step. It creates all of its tables
// or none of them.
type Migration interface {
	// Name identifies the migration, e.g. "wine".
	Name() string

	// Tables returns the names of tables created by the migration.
	Tables() []string

	// Dependencies returns the names of tables that must exist
	// before the migration is applied.
	Dependencies() []string

	// Up creates tables of the migration. It fails with
	// ErrSchemaConflict if any of them exist already and with
	// ErrMissingDependency if a dependency table is absent.
	Up(ctx context.Context) error

	// Down always fails with ErrIrreversible.
	Down(ctx context.Context) error
}

// SchemaManager applies migrations in order.
type SchemaManager interface {
	// Create applies world, log and wine migrations.
	Create(ctx context.Context) error

	// Revert rolls migrations back. None of the current migrations
	// is reversible, so it fails.
	Revert(ctx context.Context) error

	// Migrations returns the ordered list of migrations.
	Migrations() []Migration
}
