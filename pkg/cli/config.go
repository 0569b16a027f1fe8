package cli

import (
	"log/slog"
	"os"

	"github.com/anvil3d/scenevault/pkg/repository"
	"github.com/anvil3d/scenevault/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	saveDir  string
	logLevel string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "save-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory holding saved scene files",
			Value:       "assets/scenes",
			Sources:     cli.EnvVars("SCENEVAULT_DIR"),
			Destination: &cfg.saveDir,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("SCENEVAULT_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// newStore creates the directory-backed scene store
func (cfg *config) newStore() (repository.Store, error) {
	return repository.NewDirStore(cfg.saveDir)
}

// newLogger creates a logger at the configured level and installs it as
// the default
func (cfg *config) newLogger() *slog.Logger {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logger
}
