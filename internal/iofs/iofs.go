// Package iofs creates directories and files WineDB keeps in the
// user's home directory.
package iofs

import (
	"os"

	"github.com/gnames/winedb/internal/ioconfig"
	"github.com/gnames/winedb/pkg/config"
)

// EnsureDirs creates config, data and log directories if they
// are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the file
// exists already.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := ioconfig.DefaultYAML()
	if err != nil {
		return WriteFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}
