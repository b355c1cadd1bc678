package config

const (
	defaultStagingDir       = "~/.local/share/posterforge/staging"
	defaultOutputDir        = "~/wallpapers"
	defaultLogDir           = "~/.local/share/posterforge/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultWallpaperWidth   = 1290
	defaultWallpaperHeight  = 2796
	defaultWallpaperScale   = 3
	defaultIdentifier       = 9136
	defaultJPEGQuality      = 92
	defaultStaleMaxAgeHours = 24
)

// Default returns a Config populated with repository defaults. The geometry
// defaults target a 6.7" @3x display.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir: defaultStagingDir,
			OutputDir:  defaultOutputDir,
			LogDir:     defaultLogDir,
		},
		Wallpaper: Wallpaper{
			Width:       defaultWallpaperWidth,
			Height:      defaultWallpaperHeight,
			Scale:       defaultWallpaperScale,
			Identifier:  defaultIdentifier,
			JPEGQuality: defaultJPEGQuality,
		},
		Staging: Staging{
			StaleMaxAgeHours: defaultStaleMaxAgeHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
