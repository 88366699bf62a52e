package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, want :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, want 30m", cfg.IdleTimeout)
	}
	if cfg.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, want auto-generated", cfg.HostKeyPath)
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".breakout", "host_key"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestResolveHostKeyPathExplicit(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "server_key")

	path, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("key directory not created: %v", err)
	}
}
