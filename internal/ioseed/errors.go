package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/errcode"
)

// SeedError creates an error for a reference row that could
// not be inserted.
func SeedError(entity, key string, err error) error {
	msg := `Cannot insert %s <em>%s</em>

<em>How to fix:</em>
  1. Run 'winedb create' first
  2. Check database logs for details`

	vars := []any{entity, key}

	return &gn.Error{
		Code: errcode.SeedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot insert %s %s: %w", entity, key, err),
	}
}
