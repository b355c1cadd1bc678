// Package naming derives the identifier strings shared across a wallpaper
// package: the resolution tag, the two layer bundle names, the wallpaper
// folder name, and the output archive name.
//
// Derivation is pure string formatting with no failure modes. Downstream
// components must consume these exact values rather than recomputing them;
// the renderer cross-references the strings between filenames and plist
// fields, so a single source of truth is load-bearing.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds every derived string for one package build.
type Names struct {
	// ResolutionTag is "{w}w-{h}h@{s}x~iphone". It appears verbatim in both
	// bundle names, the wallpaper folder name, and the descriptor's
	// logicalScreenClass field.
	ResolutionTag string
	// BackgroundBundle is "{name}_Background-{tag}.ca".
	BackgroundBundle string
	// FloatingBundle is "{name}_Floating-{tag}.ca".
	FloatingBundle string
	// WallpaperFolder is "{name}-{tag}.wallpaper".
	WallpaperFolder string
	// OutputFile is "{name}.tendies".
	OutputFile string
}

// Derive computes the full name set for a wallpaper.
func Derive(name string, width, height, scale int) Names {
	tag := ResolutionTag(width, height, scale)
	return Names{
		ResolutionTag:    tag,
		BackgroundBundle: fmt.Sprintf("%s_Background-%s.ca", name, tag),
		FloatingBundle:   fmt.Sprintf("%s_Floating-%s.ca", name, tag),
		WallpaperFolder:  fmt.Sprintf("%s-%s.wallpaper", name, tag),
		OutputFile:       name + ".tendies",
	}
}

// ResolutionTag formats the screen-class tag embedded in names and metadata.
func ResolutionTag(width, height, scale int) string {
	return fmt.Sprintf("%dw-%dh@%dx~iphone", width, height, scale)
}

var titleCaser = cases.Title(language.Und)

// DefaultName derives a wallpaper name from a video filename when the caller
// does not supply one: "sunset_loop.mp4" becomes "SunsetLoop".
func DefaultName(videoPath string) string {
	base := filepath.Base(videoPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = titleCaser.String(base)
	base = strings.ReplaceAll(base, " ", "")
	if base == "" {
		return "CustomWallpaper"
	}
	return base
}
