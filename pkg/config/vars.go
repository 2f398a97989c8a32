package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "winedb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/winedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for database files.
// Returns ~/.local/share/winedb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/winedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/winedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DBFilePath returns the default SQLite database file.
// Returns ~/.local/share/winedb/winedb.sqlite by default.
func DBFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}
