package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Roles used by the renderer. Keeping them here lets the terminal and window
// frontends agree on what each element looks like.
const (
	ColorPlayer   = ColorBrightYellow
	ColorPlatform = ColorGreen
	ColorCeiling  = ColorBrightRed
	ColorSky      = ColorDarkGray
	ColorHUD      = ColorWhite
)
