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

	"github.com/gnames/gn"
	"github.com/gnames/winedb/internal/ioseed"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference geography rows",
		Long: `Insert reference rows into a database created by 'winedb create':

  - country 'at' (Austria, AUT)
  - region 'n' (Niederösterreich) of Austria

Rows that exist already are kept, so the command can run
many times.

Examples:
  winedb seed`,
		RunE: runSeed,
	}

	return seedCmd
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	return seedDB(ctx, op.DB())
}

func seedDB(ctx context.Context, gdb *gorm.DB) error {
	fx, err := ioseed.Seed(ctx, gdb)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	err = recordLog(ctx, gdb, "Seeded reference rows",
		"country", fx.Country.Key,
		"region", fx.Region.Key,
	)
	if err != nil {
		gn.Warn("Could not record seeding in logs: %s", err)
	}

	gn.Info("Reference rows: <em>%s</em> (%s), <em>%s</em> (%s)",
		fx.Country.Key, fx.Country.Title,
		fx.Region.Key, fx.Region.Title,
	)
	return nil
}
