/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/winedb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var seed bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the WineDB database schema in an empty database.

This command:
  1. Connects to the database using configuration settings
  2. Creates world geography tables (countries, regions, cities)
  3. Creates the logs table
  4. Creates wine tables (grapes, families, persons, vineyards,
     varieties, wineries, wines, vintages)

Creation is one-shot. It fails if any of the tables exist
already, and a schema cannot be rolled back afterwards.

Use --seed to insert reference geography rows after creation.

Examples:
  winedb create
  winedb create --seed
  winedb create -p /tmp/wine.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, seed)
		},
	}

	createCmd.Flags().BoolVarP(&seed, "seed", "s",
		false, "insert reference geography rows after creation")

	return createCmd
}

func runCreate(
	_ *cobra.Command,
	_ []string,
	seed bool,
) error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	start := time.Now()
	sm := ioschema.NewManager(op)

	gn.Info("Creating schema...")
	if err = sm.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	dur := gnfmt.TimeString(time.Since(start).Seconds())

	err = recordLog(ctx, op.DB(), "Created schema", "duration", dur)
	if err != nil {
		gn.Warn("Could not record schema creation in logs: %s", err)
	}

	gn.Info("Database schema created in <em>%s</em>", dur)

	if seed {
		return seedDB(ctx, op.DB())
	}

	gn.Info("\nNext steps:")
	gn.Info("  - Run 'winedb seed' to add reference geography")

	return nil
}
