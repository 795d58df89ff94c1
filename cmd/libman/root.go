// cmd/libman/root.go
// This file contains the root command and the application dependency
// struct that is threaded through every subcommand.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aoideee/libman/internal/config"
	"github.com/aoideee/libman/internal/data"
	"github.com/aoideee/libman/internal/storage"
)

// application bundles every shared resource the subcommands need.
// It is populated once per process invocation in PersistentPreRunE and
// passed explicitly to each command constructor; there is no package
// level shared state.
type application struct {
	config config.Config
	logger *slog.Logger
	store  *data.Store
}

// newRootCmd builds the full command tree. The record store is
// constructed before any subcommand runs, so every RunE can assume a
// loaded catalog.
func newRootCmd() *cobra.Command {
	app := &application{}

	var (
		configPath string
		dataFile   string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:     "libman",
		Short:   "libman manages a library catalog stored in a JSON file",
		Version: appVersion,
		Long: `libman is a command-line library catalog manager.

Books are recorded in a flat JSON file with a title, author, publication
year, and an availability status. Books can be added, listed, searched by
title, author, year, or id, deleted, checked out, and returned.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = config.FromEnv(cfg)
			if dataFile != "" {
				cfg.Data.File = dataFile
			}

			// stdout carries command output only; diagnostics go to stderr.
			level := slog.LevelInfo
			if verbose || cfg.Log.Level == "debug" {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			store, err := data.NewStore(cfg.Data.File, storage.NewAdapter())
			if err != nil {
				logger.Error(err.Error())
				return err
			}

			app.config = cfg
			app.logger = logger
			app.store = store

			logger.Debug("catalog loaded", "file", cfg.Data.File, "books", store.Len())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the catalog file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		app.addCmd(),
		app.listCmd(),
		app.findByNameCmd(),
		app.findByAuthorCmd(),
		app.findByYearCmd(),
		app.findByIDCmd(),
		app.deleteCmd(),
		app.getCmd(),
		app.returnCmd(),
	)

	return rootCmd
}
