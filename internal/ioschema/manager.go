// Package ioschema implements Migration and SchemaManager interfaces
// on top of GORM migrator. This is an impure I/O package.
package ioschema

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gnames/winedb/pkg/db"
	"github.com/gnames/winedb/pkg/lifecycle"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator   db.Operator
	migrations []lifecycle.Migration
}

// NewManager creates a new SchemaManager with world, log and wine
// migrations.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{
		operator:   op,
		migrations: Migrations(op),
	}
}

// Create applies migrations in order and stops at the first failure.
func (m *manager) Create(ctx context.Context) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	for _, mig := range m.migrations {
		slog.Debug("Applying migration", "migration", mig.Name())
		if err := mig.Up(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Revert rolls migrations back starting from the last one.
func (m *manager) Revert(ctx context.Context) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	for _, mig := range slices.Backward(m.migrations) {
		if err := mig.Down(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *manager) Migrations() []lifecycle.Migration {
	return slices.Clone(m.migrations)
}
