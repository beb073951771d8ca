package config

// Default configuration constants
const (
	// Tooltip defaults
	defaultViewportMargin = 0   // pixels
	defaultShowDelayMs    = 100 // delay before show, avoids flicker

	// Simulator defaults
	defaultDocumentWidth  = 2000 // pixels
	defaultDocumentHeight = 3000
	defaultViewportWidth  = 1000
	defaultViewportHeight = 800
	defaultTooltipWidth   = 200
	defaultTooltipHeight  = 80
	defaultScrollStep     = 50
	defaultCursorStep     = 25
)

// DefaultConfig returns the default configuration values for hoverkit.
func DefaultConfig() *Config {
	return &Config{
		Tooltip: TooltipConfig{
			ViewportMargin: defaultViewportMargin,
			Placements:     []string{"bottom", "top", "right", "left"},
			ShowDelayMs:    defaultShowDelayMs,
		},
		Sim: SimConfig{
			DocumentWidth:  defaultDocumentWidth,
			DocumentHeight: defaultDocumentHeight,
			ViewportWidth:  defaultViewportWidth,
			ViewportHeight: defaultViewportHeight,
			TooltipWidth:   defaultTooltipWidth,
			TooltipHeight:  defaultTooltipHeight,
			ScrollStep:     defaultScrollStep,
			CursorStep:     defaultCursorStep,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console", // console or json
		},
	}
}
