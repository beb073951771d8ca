package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hoverkit/internal/cli/model"
	"github.com/bnema/hoverkit/internal/config"
	"github.com/bnema/hoverkit/internal/logging"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the interactive placement simulator",
	Long: `Run a terminal simulator that drives the real hover engine over a
virtual document.

Arrow keys (or hjkl) move the cursor, pgup/pgdn scroll the document, and
the view shows the tracked viewport state, hover state over a sample
target, and the collision mask for every configured placement, best
candidate first.

Document, viewport and tooltip dimensions come from the [sim] section of
the config file.`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
}

func runSim(_ *cobra.Command, _ []string) error {
	ctx := logging.WithComponent(rootCtx, "sim")
	m := model.NewSimModel(ctx, theme, cfgManager.Get())

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Config edits reach the running simulator as messages, so margin and
	// placement changes apply live.
	cfgManager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: cfg})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}
	return nil
}
