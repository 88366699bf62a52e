// Package config provides YAML-based configuration loading for the
// breakout arena: geometry, speeds, brick grid and tick rate.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the Breakout simulation.
// Units are world units (y-up, origin at the arena center) and seconds.
type BreakoutConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BricksConfig `yaml:"bricks"`
	Timing TimingConfig `yaml:"timing"`
}

// ArenaConfig places the four walls. Each wall is centered on its line.
type ArenaConfig struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Bottom        float64 `yaml:"bottom"`
	Top           float64 `yaml:"top"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the distance between the left and right wall lines.
func (a ArenaConfig) Width() float64 {
	return a.Right - a.Left
}

// Height returns the distance between the bottom and top wall lines.
func (a ArenaConfig) Height() float64 {
	return a.Top - a.Bottom
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per second
	BottomOffset float64 `yaml:"bottom_offset"` // Paddle center above the bottom wall
}

// BallConfig defines the ball's size, spawn point and launch velocity.
type BallConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"` // Units per second
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gap          float64 `yaml:"gap"`            // Between neighbouring bricks
	GapToPaddle  float64 `yaml:"gap_to_paddle"`  // Between bottom wall and lowest row
	GapToCeiling float64 `yaml:"gap_to_ceiling"` // Between top row and top wall
	GapToSides   float64 `yaml:"gap_to_sides"`   // Between outer columns and side walls
}

// TimingConfig defines the fixed simulation rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Fixed ticks per second
	// MaxCatchUp caps ticks run for a single slow frame.
	MaxCatchUp int `yaml:"max_catch_up"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
