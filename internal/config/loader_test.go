package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded yaml = %+v\nhardcoded = %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("ball:\n  speed: 250\nbricks:\n  gap: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Speed != 250 {
		t.Errorf("Ball.Speed = %v, expected 250", cfg.Ball.Speed)
	}
	if cfg.Bricks.Gap != 8 {
		t.Errorf("Bricks.Gap = %v, expected 8", cfg.Bricks.Gap)
	}
	// Keys absent from the file keep their defaults
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %v, expected default 120", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadBreakoutSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local ./configs file
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "breakout.yaml"), []byte("paddle:\n  speed: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBreakout("")
	if cfg.Paddle.Speed != 600 {
		t.Errorf("local config: Paddle.Speed = %v, expected 600", cfg.Paddle.Speed)
	}

	// User config wins over local
	userDir := filepath.Join(home, AppDirName, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "breakout.yaml"), []byte("paddle:\n  speed: 700\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBreakout("")
	if cfg.Paddle.Speed != 700 {
		t.Errorf("user config: Paddle.Speed = %v, expected 700", cfg.Paddle.Speed)
	}

	// A broken user config is skipped
	if err := os.WriteFile(filepath.Join(userDir, "breakout.yaml"), []byte("paddle:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBreakout("")
	if cfg.Paddle.Speed != 600 {
		t.Errorf("broken user config should fall through, Paddle.Speed = %v", cfg.Paddle.Speed)
	}
}

func TestUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := UserDir()
	if err != nil {
		t.Fatalf("UserDir() error: %v", err)
	}
	if want := filepath.Join(home, ".breakout"); dir != want {
		t.Errorf("UserDir() = %q, want %q", dir, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero ball size", func(c *BreakoutConfig) { c.Ball.Size = 0 }},
		{"negative paddle speed", func(c *BreakoutConfig) { c.Paddle.Speed = -5 }},
		{"negative gap", func(c *BreakoutConfig) { c.Bricks.Gap = -1 }},
		{"inverted arena", func(c *BreakoutConfig) { c.Arena.Left, c.Arena.Right = 450, -450 }},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = 2000 }},
		{"still ball", func(c *BreakoutConfig) { c.Ball.DirectionX, c.Ball.DirectionY = 0, 0 }},
		{"zero tick rate", func(c *BreakoutConfig) { c.Timing.TickRate = 0 }},
		{"zero catch-up", func(c *BreakoutConfig) { c.Timing.MaxCatchUp = 0 }},
		{"NaN gap", func(c *BreakoutConfig) { c.Bricks.Gap = math.NaN() }},
		{"NaN side gap", func(c *BreakoutConfig) { c.Bricks.GapToSides = math.NaN() }},
		{"NaN arena left", func(c *BreakoutConfig) { c.Arena.Left = math.NaN() }},
		{"infinite arena top", func(c *BreakoutConfig) { c.Arena.Top = math.Inf(1) }},
		{"NaN ball start", func(c *BreakoutConfig) { c.Ball.StartX = math.NaN() }},
		{"NaN ball direction", func(c *BreakoutConfig) { c.Ball.DirectionY = math.NaN() }},
		{"NaN ball speed", func(c *BreakoutConfig) { c.Ball.Speed = math.NaN() }},
		{"tick rate above cap", func(c *BreakoutConfig) { c.Timing.TickRate = MaxTickRate + 1 }},
		{"nanosecond tick rate", func(c *BreakoutConfig) { c.Timing.TickRate = 1_000_000_001 }},
	}

	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	fastest := DefaultBreakoutConfig()
	fastest.Timing.TickRate = MaxTickRate
	if err := fastest.Validate(); err != nil {
		t.Errorf("tick rate %d should validate: %v", MaxTickRate, err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	base := DefaultBreakoutConfig()

	normal := base
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	easy := base
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Ball.Speed >= base.Ball.Speed || easy.Paddle.Width <= base.Paddle.Width {
		t.Errorf("easy preset should slow the ball and widen the paddle, got %+v", easy)
	}

	hard := base
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= base.Ball.Speed || hard.Paddle.Width >= base.Paddle.Width {
		t.Errorf("hard preset should speed the ball and shrink the paddle, got %+v", hard)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.Speed = 321

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := parseBreakout(data)
	if err != nil {
		t.Fatalf("parse marshalled config: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
