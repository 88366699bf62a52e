package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for arena elements.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPaddle
	ColorBall
	ColorBrick
	ColorText
	ColorScore
)
