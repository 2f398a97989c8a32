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
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/winedb/internal/ioconfig"
	"github.com/gnames/winedb/internal/iofs"
	"github.com/gnames/winedb/internal/iologger"
	app "github.com/gnames/winedb/pkg"
	"github.com/gnames/winedb/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "winedb",
		Short:   "WineDB creates and manages a wine reference database",
		Long: `WineDB keeps wines, wineries, vintages, grapes, families,
varieties, vineyards and winemakers in a relational database
on top of world geography (countries, regions, cities) and logs.

Features:
  - Schema Creation: one-shot creation of all tables
  - Reference Data: Austria and Niederösterreich rows
  - Statistics: row counts of every table

The database is SQLite by default, PostgreSQL is supported as well.
Settings are kept in ~/.config/winedb/config.yaml and can be
overridden by WINEDB_ environment variables or flags.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "winedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for winedb")

	pf := rootCmd.PersistentFlags()
	pf.StringP("driver", "d", "",
		"database engine, 'sqlite' or 'postgres'")
	pf.StringP("path", "p", "",
		"SQLite database file, ':memory:' for in-memory database")

	rootCmd.AddCommand(
		getCreateCmd(),
		getSeedCmd(),
		getStatsCmd(),
		getRollbackCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = append(cfgViper.ToOptions(), flagOptions(cmd)...)
	cfg.Update(opts)

	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if cfg.Database.Driver == config.DriverSQLite && cfg.Database.Path == "" {
		cfg.Update([]config.Option{
			config.OptDatabasePath(config.DBFilePath(homeDir)),
		})
	}

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"database", cfg.Database.Address(),
	)

	return nil
}

// flagOptions converts persistent flags set by user to options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("driver") {
		s, _ := flags.GetString("driver")
		res = append(res, config.OptDatabaseDriver(s))
	}
	if flags.Changed("path") {
		s, _ := flags.GetString("path")
		res = append(res, config.OptDatabasePath(s))
	}
	return res
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
