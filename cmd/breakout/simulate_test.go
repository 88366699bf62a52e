package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestInputFor(t *testing.T) {
	tests := []struct {
		pattern string
		tick    int
		want    float64
		wantErr bool
	}{
		{"none", 0, 0, false},
		{"sweep", 0, -1, false},
		{"sweep", 127, -1, false},
		{"sweep", 128, 1, false},
		{"sweep", 256, -1, false},
		{"zigzag", 0, 0, true},
	}

	for _, tt := range tests {
		in, err := inputFor(tt.pattern, tt.tick)
		if (err != nil) != tt.wantErr {
			t.Errorf("inputFor(%q, %d) error = %v, wantErr %v", tt.pattern, tt.tick, err, tt.wantErr)
			continue
		}
		if got := in.Direction(); got != tt.want {
			t.Errorf("inputFor(%q, %d) direction = %v, want %v", tt.pattern, tt.tick, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf(:23234) = %q", got)
	}
	if got := portOf("localhost:2222"); got != "2222" {
		t.Errorf("portOf(localhost:2222) = %q", got)
	}
}

func TestLoadConfigDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	defer func() { flagDifficulty = "" }()

	flagDifficulty = "hard"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Ball.Speed != 600 {
		t.Errorf("hard ball speed = %v, want 600", cfg.Ball.Speed)
	}

	flagDifficulty = "impossible"
	if _, err := loadConfig(); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("unknown difficulty error = %v, want ErrInvalidConfig", err)
	}
}
