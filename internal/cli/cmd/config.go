package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/hoverkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the configuration file and regenerate its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Regenerate the config JSON schema next to the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := cfgManager.Get()

	fmt.Println(theme.BoxHeader.Render("hoverkit configuration"))
	fmt.Println(theme.Subtle.Render("file: " + cfgManager.GetConfigFileUsed()))
	fmt.Println()

	line := func(key string, value any) {
		fmt.Printf("%s %v\n", theme.HelpKey.Render(fmt.Sprintf("%-24s", key)), value)
	}

	line("tooltip.viewport_margin", cfg.Tooltip.ViewportMargin)
	line("tooltip.placements", strings.Join(cfg.Tooltip.Placements, ", "))
	line("tooltip.show_delay_ms", cfg.Tooltip.ShowDelayMs)
	line("sim.document", fmt.Sprintf("%d×%d", cfg.Sim.DocumentWidth, cfg.Sim.DocumentHeight))
	line("sim.viewport", fmt.Sprintf("%d×%d", cfg.Sim.ViewportWidth, cfg.Sim.ViewportHeight))
	line("sim.tooltip", fmt.Sprintf("%d×%d", cfg.Sim.TooltipWidth, cfg.Sim.TooltipHeight))
	line("sim.scroll_step", cfg.Sim.ScrollStep)
	line("sim.cursor_step", cfg.Sim.CursorStep)
	line("logging.level", cfg.Logging.Level)
	line("logging.format", cfg.Logging.Format)
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if err := config.GenerateSchemaFile(); err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(theme.SuccessStyle.Render("schema written to " + dir + "/config.schema.json"))
	return nil
}
