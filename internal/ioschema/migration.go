package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/winedb/pkg/db"
	"github.com/gnames/winedb/pkg/lifecycle"
	"github.com/gnames/winedb/pkg/schema"
	"gorm.io/gorm"
)

// migration creates a set of tables in one transaction.
// World, log and wine schemas differ only by their models and
// dependencies.
type migration struct {
	name     string
	operator db.Operator
	models   []any
	deps     []string
}

// NewWorldMigration creates countries, regions and cities.
func NewWorldMigration(op db.Operator) lifecycle.Migration {
	return &migration{
		name:     "world",
		operator: op,
		models:   schema.WorldModels(),
	}
}

// NewLogMigration creates the logs table.
func NewLogMigration(op db.Operator) lifecycle.Migration {
	return &migration{
		name:     "log",
		operator: op,
		models:   schema.LogModels(),
	}
}

// NewWineMigration creates the wine-domain tables. It requires world
// and log tables.
func NewWineMigration(op db.Operator) lifecycle.Migration {
	return &migration{
		name:     "wine",
		operator: op,
		models:   schema.WineModels(),
		deps:     schema.WineDependencies(),
	}
}

// Migrations returns world, log and wine migrations in the order they
// have to be applied.
func Migrations(op db.Operator) []lifecycle.Migration {
	return []lifecycle.Migration{
		NewWorldMigration(op),
		NewLogMigration(op),
		NewWineMigration(op),
	}
}

func (m *migration) Name() string {
	return m.name
}

func (m *migration) Tables() []string {
	return schema.TableNames(m.models)
}

func (m *migration) Dependencies() []string {
	res := make([]string, len(m.deps))
	copy(res, m.deps)
	return res
}

// Up checks that none of the tables exist and that all dependencies
// are in place, then creates the tables. A failure during creation
// rolls back every table created so far.
func (m *migration) Up(ctx context.Context) error {
	gdb := m.operator.DB()
	if gdb == nil {
		return NotConnectedError()
	}

	for _, table := range m.Tables() {
		exists, err := m.operator.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if exists {
			return SchemaConflictError(m.name, table)
		}
	}

	for _, table := range m.deps {
		exists, err := m.operator.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return MissingDependencyError(m.name, table)
		}
	}

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Migrator().CreateTable(m.models...)
	})
	if err != nil {
		return CreateSchemaError(m.name, err)
	}

	slog.Info("Created schema",
		"migration", m.name,
		"tables", m.Tables(),
	)
	return nil
}

// Down always fails, data in these tables cannot be recreated.
func (m *migration) Down(_ context.Context) error {
	return IrreversibleError(m.name)
}
