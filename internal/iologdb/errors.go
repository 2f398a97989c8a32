package iologdb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/errcode"
)

// LogWriteError creates an error for a log record that could
// not be saved to the database.
func LogWriteError(err error) error {
	msg := "Cannot save log record to the database"

	return &gn.Error{
		Code: errcode.LogWriteError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot write log record: %w", err),
	}
}
