package config

import (
	"fmt"
	"strings"

	"posterforge/internal/services"
)

// Validate ensures the configuration is usable. All failures carry the
// configuration marker so the driver can classify them.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWallpaper(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		return fmt.Errorf("%w: paths.staging_dir is required", services.ErrConfiguration)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return fmt.Errorf("%w: paths.output_dir is required", services.ErrConfiguration)
	}
	return nil
}

func (c *Config) validateWallpaper() error {
	if c.Wallpaper.Width <= 0 || c.Wallpaper.Height <= 0 {
		return fmt.Errorf("%w: wallpaper.width and wallpaper.height must be positive", services.ErrConfiguration)
	}
	if c.Wallpaper.Scale <= 0 {
		return fmt.Errorf("%w: wallpaper.scale must be positive", services.ErrConfiguration)
	}
	if c.Wallpaper.JPEGQuality < 1 || c.Wallpaper.JPEGQuality > 100 {
		return fmt.Errorf("%w: wallpaper.jpeg_quality must be within 1..100", services.ErrConfiguration)
	}
	if c.Wallpaper.ExtractWorkers < 0 {
		return fmt.Errorf("%w: wallpaper.extract_workers must not be negative", services.ErrConfiguration)
	}
	if c.Staging.StaleMaxAgeHours < 0 {
		return fmt.Errorf("%w: staging.stale_max_age_hours must not be negative", services.ErrConfiguration)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", services.ErrConfiguration, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn, or error, got %q", services.ErrConfiguration, c.Logging.Level)
	}
	return nil
}
