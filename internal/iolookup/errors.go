package iolookup

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/errcode"
)

// NotFoundError creates an error for a key without a record.
func NotFoundError(entity, key string, err error) error {
	msg := "Cannot find %s <em>%s</em>"
	vars := []any{entity, key}

	return &gn.Error{
		Code: errcode.LookupNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s %s: %w", entity, key, err),
	}
}

// QueryError creates an error for a failed lookup query.
func QueryError(entity, key string, err error) error {
	msg := `Cannot look up %s <em>%s</em>

<em>Possible causes:</em>
  - Database schema is not created
  - Database connection is lost`

	vars := []any{entity, key}

	return &gn.Error{
		Code: errcode.LookupQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("lookup of %s %s failed: %w", entity, key, err),
	}
}
