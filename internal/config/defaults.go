package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Left:          -450,
			Right:         450,
			Bottom:        -300,
			Top:           300,
			WallThickness: 10,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       20,
			Speed:        500,
			BottomOffset: 60,
		},
		Ball: BallConfig{
			Size:       30,
			Speed:      400,
			StartX:     0,
			StartY:     -50,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Bricks: BricksConfig{
			Width:        100,
			Height:       30,
			Gap:          5,
			GapToPaddle:  270,
			GapToCeiling: 20,
			GapToSides:   20,
		},
		Timing: TimingConfig{
			TickRate:   64,
			MaxCatchUp: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
