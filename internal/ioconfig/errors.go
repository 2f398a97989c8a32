package ioconfig

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/pkg/errcode"
)

// ReadConfigError creates an error for a config file that
// cannot be read or parsed.
func ReadConfigError(path string, err error) error {
	msg := `Cannot read config file <em>%s</em>

<em>How to fix:</em>
  1. Check YAML syntax of the file
  2. Or delete it, a default file is generated on the next run`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read config %s: %w", path, err),
	}
}
