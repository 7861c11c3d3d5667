package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Controls.MouseSensitivity != 0.001 {
		t.Errorf("expected mouse sensitivity 0.001, got %f", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.InvertY {
		t.Error("expected invert_y to be false by default")
	}

	if cfg.Assets.Dir != "assets" {
		t.Errorf("expected assets dir 'assets', got %s", cfg.Assets.Dir)
	}
	if len(cfg.Assets.NoteTextures) != 3 {
		t.Errorf("expected 3 note textures, got %d", len(cfg.Assets.NoteTextures))
	}

	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.yaml")
	yamlData := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
controls:
  mouse_sensitivity: 0.002
  invert_y: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Controls.MouseSensitivity != 0.002 {
		t.Errorf("expected sensitivity 0.002, got %f", cfg.Controls.MouseSensitivity)
	}
	if !cfg.Controls.InvertY {
		t.Error("expected invert_y true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults.
	if cfg.Assets.Dir != "assets" {
		t.Errorf("expected assets dir default to survive, got %s", cfg.Assets.Dir)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive partial file")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("{not: valid: yaml:"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "sub", "config.yaml")

	orig := Default()
	orig.Graphics.Width = 1024
	orig.Audio.Muted = true

	if err := orig.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}

	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected width 1024 after round trip, got %d", loaded.Graphics.Width)
	}
	if !loaded.Audio.Muted {
		t.Error("expected muted true after round trip")
	}
}
