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
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/internal/iodb"
	"github.com/gnames/winedb/internal/iologdb"
	"github.com/gnames/winedb/pkg/db"
	"gorm.io/gorm"
)

// connect opens the database from the loaded configuration.
// The caller closes the returned operator.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}

	gn.Info("Connected to %s database <em>%s</em>",
		op.Driver(), cfg.Database.Address())
	return op, nil
}

// recordLog writes an info record for the cmd pack into the logs
// table. The handler is called directly so a failed write is
// returned instead of being dropped by slog.Logger.
func recordLog(
	ctx context.Context,
	gdb *gorm.DB,
	msg string,
	args ...any,
) error {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
	r.Add(iologdb.PackKey, "cmd")
	r.Add(args...)
	return iologdb.NewHandler(gdb, slog.LevelInfo).Handle(ctx, r)
}
