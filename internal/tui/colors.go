package tui

// Color constants for the timevate TUI theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Muted text
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (purple theme)
	ColorAccentMain   = "#8E44AD" // Clock digits, active borders
	ColorAccentBright = "#A78BFA" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Completed challenges
	ColorWarning = "#F59E0B" // Paused countdowns
)
