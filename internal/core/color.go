package core

// Color is a foreground color for a screen cell.
// The platform layer maps these onto terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)
