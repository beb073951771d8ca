// Package cmd provides Cobra CLI commands for hoverkit.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hoverkit/internal/cli/styles"
	"github.com/bnema/hoverkit/internal/config"
	"github.com/bnema/hoverkit/internal/logging"
)

var (
	cfgManager *config.Manager
	theme      *styles.Theme
	rootCtx    = context.Background()

	rootCmd = &cobra.Command{
		Use:   "hoverkit",
		Short: "Tooltip placement toolkit for GTK4 scrolled views",
		Long: `Hoverkit tracks viewport geometry for GTK4 scrolled views and computes
viewport-edge collision masks for candidate tooltip placements.

The library lives in pkg/hover and pkg/gtkview; this CLI ships the
developer tools around it:

  hoverkit sim      interactive placement simulator in the terminal
  hoverkit config   inspect and manage the configuration file`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			mgr, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := mgr.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgManager = mgr

			cfg := mgr.Get()
			logCfg := logging.DefaultConfig()
			logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
			logCfg.Format = cfg.Logging.Format
			log := logging.New(logCfg)
			rootCtx = logging.WithContext(context.Background(), log)

			// Hot-reload: edits to the config file propagate to registered
			// callbacks while a command runs.
			if err := mgr.Watch(); err != nil {
				log.Warn().Err(err).Msg("config watching unavailable")
			}

			theme = styles.NewTheme()
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the version string shown by --version (called from main).
func SetBuildInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
