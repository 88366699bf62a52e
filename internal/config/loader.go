package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is
// an error; the implicit locations are skipped when broken.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseBreakout(defaultBreakoutYAML); err == nil {
		return cfg, nil
	}
	return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed is broken
}

func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// AppDirName is the per-user directory under $HOME for configs and the SSH host key.
const AppDirName = ".breakout"

// UserDir returns the per-user application directory, ~/.breakout.
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := UserDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// Marshal renders the config as YAML.
func (c BreakoutConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// MaxTickRate bounds timing.tick_rate so the fixed step stays a whole
// number of nanoseconds well above zero.
const MaxTickRate = 1000

// Validate checks that the config describes a buildable arena.
func (c BreakoutConfig) Validate() error {
	finite := []struct {
		name string
		val  float64
	}{
		{"arena.left", c.Arena.Left},
		{"arena.right", c.Arena.Right},
		{"arena.bottom", c.Arena.Bottom},
		{"arena.top", c.Arena.Top},
		{"paddle.bottom_offset", c.Paddle.BottomOffset},
		{"ball.start_x", c.Ball.StartX},
		{"ball.start_y", c.Ball.StartY},
		{"ball.direction_x", c.Ball.DirectionX},
		{"ball.direction_y", c.Ball.DirectionY},
		{"bricks.gap", c.Bricks.Gap},
		{"bricks.gap_to_paddle", c.Bricks.GapToPaddle},
		{"bricks.gap_to_ceiling", c.Bricks.GapToCeiling},
		{"bricks.gap_to_sides", c.Bricks.GapToSides},
	}
	for _, f := range finite {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidConfig, f.name, f.val)
		}
	}

	positive := []struct {
		name string
		val  float64
	}{
		{"arena.wall_thickness", c.Arena.WallThickness},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.size", c.Ball.Size},
		{"ball.speed", c.Ball.Speed},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
	}
	for _, p := range positive {
		// Written as !(> 0) so NaN fails too
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Bricks.Gap < 0 || c.Bricks.GapToPaddle < 0 || c.Bricks.GapToCeiling < 0 || c.Bricks.GapToSides < 0 {
		return fmt.Errorf("%w: brick gaps must not be negative", ErrInvalidConfig)
	}
	if c.Arena.Width() <= 0 || c.Arena.Height() <= 0 {
		return fmt.Errorf("%w: arena right/top must exceed left/bottom", ErrInvalidConfig)
	}
	if c.Paddle.Width+c.Arena.WallThickness > c.Arena.Width() {
		return fmt.Errorf("%w: paddle width %v does not fit arena width %v", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width())
	}
	if c.Ball.DirectionX == 0 && c.Ball.DirectionY == 0 {
		return fmt.Errorf("%w: ball direction must be non-zero", ErrInvalidConfig)
	}
	if c.Timing.TickRate <= 0 || c.Timing.TickRate > MaxTickRate {
		return fmt.Errorf("%w: timing.tick_rate must be in [1, %d], got %d", ErrInvalidConfig, MaxTickRate, c.Timing.TickRate)
	}
	if c.Timing.MaxCatchUp <= 0 {
		return fmt.Errorf("%w: timing.max_catch_up must be positive, got %d", ErrInvalidConfig, c.Timing.MaxCatchUp)
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.75
		cfg.Paddle.Width *= 1.25
	case DifficultyHard:
		cfg.Ball.Speed *= 1.5
		cfg.Paddle.Speed *= 1.2
		cfg.Paddle.Width *= 0.75
	}
}
