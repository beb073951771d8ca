package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Tooltip.ViewportMargin < 0 {
		validationErrors = append(validationErrors, "tooltip.viewport_margin must be non-negative")
	}
	if config.Tooltip.ShowDelayMs < 0 {
		validationErrors = append(validationErrors, "tooltip.show_delay_ms must be non-negative")
	}

	if len(config.Tooltip.Placements) == 0 {
		validationErrors = append(validationErrors, "tooltip.placements cannot be empty")
	}
	seen := make(map[string]bool)
	for _, placement := range config.Tooltip.Placements {
		switch placement {
		case "top", "bottom", "left", "right":
			// Valid
		default:
			validationErrors = append(validationErrors, fmt.Sprintf("tooltip.placements entries must be one of: top, bottom, left, right (got: %s)", placement))
		}
		if seen[placement] {
			validationErrors = append(validationErrors, fmt.Sprintf("duplicate placement '%s' in tooltip.placements", placement))
		}
		seen[placement] = true
	}

	if config.Sim.DocumentWidth < 1 || config.Sim.DocumentHeight < 1 {
		validationErrors = append(validationErrors, "sim.document_width and sim.document_height must be positive")
	}
	if config.Sim.ViewportWidth < 1 || config.Sim.ViewportHeight < 1 {
		validationErrors = append(validationErrors, "sim.viewport_width and sim.viewport_height must be positive")
	}
	if config.Sim.ViewportWidth > config.Sim.DocumentWidth || config.Sim.ViewportHeight > config.Sim.DocumentHeight {
		validationErrors = append(validationErrors, "sim viewport cannot be larger than the document")
	}
	if config.Sim.TooltipWidth < 1 || config.Sim.TooltipHeight < 1 {
		validationErrors = append(validationErrors, "sim.tooltip_width and sim.tooltip_height must be positive")
	}
	if config.Sim.ScrollStep < 1 {
		validationErrors = append(validationErrors, "sim.scroll_step must be positive")
	}
	if config.Sim.CursorStep < 1 {
		validationErrors = append(validationErrors, "sim.cursor_step must be positive")
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
