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
	"github.com/gnames/winedb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getRollbackCmd returns the rollback command.
func getRollbackCmd() *cobra.Command {
	rollbackCmd := &cobra.Command{
		Use:   "rollback",
		Short: "Try to roll back the database schema",
		Long: `Try to roll back the WineDB schema.

WineDB migrations are irreversible: rolling them back would
destroy data that cannot be recreated. This command always
fails and leaves the database untouched. Drop the database
manually if you really need to start over.

Examples:
  winedb rollback`,
		RunE: runRollback,
	}

	return rollbackCmd
}

func runRollback(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = ioschema.NewManager(op).Revert(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
