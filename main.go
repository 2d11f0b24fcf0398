// main.go
//
// Entry point for the gamedir binary.
// Responsibilities:
//   - Load .env (development) and the validated process config.
//   - Configure the global zerolog logger (console/json, optional rotating file).
//   - Dispatch to the cobra subcommands in commands.go.

package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
	"github.com/eabrahm-wq/GameDirectory/internal/collections"
	"github.com/eabrahm-wq/GameDirectory/internal/config"
	"github.com/eabrahm-wq/GameDirectory/internal/logging"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("gamedir failed")
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfg    config.Config
	logs   io.Closer
	games  *catalog.Catalog
	topics *collections.Set
}

// newRootCmd builds the command tree. Each call returns a fresh tree so tests
// can execute commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gamedir",
		Short:         "Daily Mind Games directory",
		Long:          "Browse, serve and export a curated directory of daily puzzle games.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logs != nil {
				_ = a.logs.Close()
			}
		},
	}
	root.AddCommand(
		a.serveCmd(),
		a.buildCmd(),
		a.gamesCmd(),
		a.collectionsCmd(),
		a.favoritesCmd(),
		a.resetCmd(),
	)
	return root
}

// load reads config, logging and the embedded directory data.
func (a *app) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logs = logging.Setup(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxMB,
	})

	if a.games, err = catalog.Load(); err != nil {
		log.Error().Err(err).Msg("failed to load catalog")
		return err
	}
	if a.topics, err = collections.Load(); err != nil {
		log.Error().Err(err).Msg("failed to load collections")
		return err
	}
	log.Debug().Int("games", a.games.Len()).Int("collections", len(a.topics.All())).Msg("directory loaded")
	return nil
}
