// Package cli implements the command-line interface for gocube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/config"
	"github.com/SeamusWaldron/gocube_sim/internal/logger"
	"github.com/SeamusWaldron/gocube_sim/internal/storage"
)

const version = "0.2.0"

// app holds global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	dbPath     string
	seed       int64
	verbose    bool
	noJournal  bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gocube",
		Short: "GoCube Simulator",
		Long: `GoCube Simulator - a virtual 3x3x3 Rubik's Cube for the terminal.

Turn faces from the keyboard, scramble with a reproducible seed, apply
move sequences in standard notation and review the journal of past sessions.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (YAML)")
	flags.StringVar(&a.dbPath, "db", "", "Journal database path (default: ~/.gocube_sim/gocube.db)")
	flags.Int64Var(&a.seed, "seed", 0, "Scramble seed (0 uses the process-wide generator)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.noJournal, "no-journal", false, "Do not record moves in the journal")

	rootCmd.AddCommand(
		a.newPlayCmd(),
		a.newApplyCmd(),
		a.newScrambleCmd(),
		a.newNetCmd(),
		a.newHistoryCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path = a.dbPath
	}
	if flags.Changed("seed") {
		cfg.Scramble.Seed = a.seed
	}
	if a.noJournal {
		cfg.Storage.Enabled = false
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	return nil
}

// openDB opens the journal, or returns nil when the journal is disabled.
func (a *app) openDB() (*storage.DB, error) {
	if !a.cfg.Storage.Enabled {
		return nil, nil
	}
	db, err := storage.Open(a.cfg.Storage.Path, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return db, nil
}

// requireDB opens the journal and fails when it is disabled.
func (a *app) requireDB() (*storage.DB, error) {
	if !a.cfg.Storage.Enabled {
		return nil, fmt.Errorf("journal is disabled")
	}
	return a.openDB()
}

func (a *app) cubeOptions() []gocube.Option {
	if a.cfg.Scramble.Seed > 0 {
		return []gocube.Option{gocube.WithSeed(uint64(a.cfg.Scramble.Seed))}
	}
	return nil
}
