package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"posterforge/internal/services"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Wallpaper.Width != defaultWallpaperWidth || cfg.Wallpaper.Height != defaultWallpaperHeight {
		t.Fatalf("unexpected geometry defaults: %dx%d", cfg.Wallpaper.Width, cfg.Wallpaper.Height)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format %q", cfg.Logging.Format)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
staging_dir = "` + filepath.Join(dir, "staging") + `"
output_dir = "` + filepath.Join(dir, "out") + `"

[wallpaper]
width = 1179
height = 2556
scale = 3
identifier = 42
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved path %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Wallpaper.Width != 1179 || cfg.Wallpaper.Identifier != 42 {
		t.Fatalf("unexpected wallpaper config: %+v", cfg.Wallpaper)
	}
	if !filepath.IsAbs(cfg.Paths.StagingDir) {
		t.Fatalf("staging dir not absolute: %q", cfg.Paths.StagingDir)
	}
	// Unset sections keep defaults.
	if cfg.Wallpaper.JPEGQuality != defaultJPEGQuality {
		t.Fatalf("expected default jpeg quality, got %d", cfg.Wallpaper.JPEGQuality)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		keyword string
	}{
		{"zero width", func(c *Config) { c.Wallpaper.Width = 0 }, "width"},
		{"zero scale", func(c *Config) { c.Wallpaper.Scale = 0 }, "scale"},
		{"bad quality", func(c *Config) { c.Wallpaper.JPEGQuality = 101 }, "jpeg_quality"},
		{"bad format", func(c *Config) { c.Logging.Format = "yaml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"empty staging", func(c *Config) { c.Paths.StagingDir = "" }, "staging_dir"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatal(err)
			}
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.keyword) {
				t.Fatalf("expected %q in error, got %v", tc.keyword, err)
			}
			if !errors.Is(err, services.ErrConfiguration) {
				t.Fatalf("expected configuration marker, got %v", err)
			}
		})
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error on existing file")
	}
	// The sample must itself load cleanly.
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
