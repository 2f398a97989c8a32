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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/db"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// tableStat is the number of rows in a table.
type tableStat struct {
	table string
	rows  int64
}

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show number of rows in every table",
		Long: `Show number of rows in every table of the database.

Tables are counted concurrently, the number of workers is
set by jobs_number of the configuration.

Examples:
  winedb stats
  winedb stats -d postgres`,
		RunE: runStats,
	}

	return statsCmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	stats, err := countTables(ctx, op, cfg.JobsNumber)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(stats) == 0 {
		gn.Warn("Database is empty, run 'winedb create' first")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, v := range stats {
		fmt.Fprintf(out, "%-12s %12s\n", v.table, humanize.Comma(v.rows))
	}
	return nil
}

// countTables counts rows of all tables using up to jobs workers.
// Results keep the order of op.Tables.
func countTables(
	ctx context.Context,
	op db.Operator,
	jobs int,
) ([]tableStat, error) {
	tables, err := op.Tables(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]tableStat, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, table := range tables {
		g.Go(func() error {
			rows, err := op.CountRows(ctx, table)
			if err != nil {
				return err
			}
			res[i] = tableStat{table: table, rows: rows}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
