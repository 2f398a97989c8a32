// Package ioconfig reads and generates WineDB configuration files.
package ioconfig

import (
	"bytes"

	"github.com/gnames/winedb/pkg/config"
	"gopkg.in/yaml.v3"
)

const header = `# WineDB configuration.
#
# Every value can be overridden by an environment variable with
# WINEDB_ prefix, for example WINEDB_DATABASE_DRIVER=postgres.
#
# database.driver is 'sqlite' or 'postgres'. An empty database.path
# means the default SQLite file in ~/.local/share/winedb,
# ':memory:' keeps the database in memory.
# log.format is 'json' or 'text', log.destination is 'file',
# 'stdout' or 'stderr'.

`

// DefaultYAML renders default configuration as a documented YAML
// document.
func DefaultYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.New()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
