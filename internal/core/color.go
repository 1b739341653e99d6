package core

// Color is a foreground color tag for a screen cell or sprite.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the arena and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorPurple
	ColorNavy
)
