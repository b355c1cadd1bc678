// Package colors derives the descriptor's prominent appearance colors from
// wallpaper content.
package colors

import (
	"image"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// Prominent holds the preferredProminentColor hex strings written into the
// wallpaper descriptor.
type Prominent struct {
	Default string
	Dark    string
}

// Fallback colors used when no frame is available to sample (a zero-frame
// video) or sampling produces nothing usable.
const (
	fallbackDefault = "#4CA4BC"
	fallbackDark    = "#4C9CBC"
)

// Fallback returns the static prominent colors.
func Fallback() Prominent {
	return Prominent{Default: fallbackDefault, Dark: fallbackDark}
}

// Sample extracts the dominant color of the frame for the default appearance
// and derives the dark-appearance variant by dimming it in Lab space.
func Sample(frame image.Image) Prominent {
	if frame == nil {
		return Fallback()
	}
	dominant := dominantcolor.Find(frame)
	base, ok := colorful.MakeColor(dominant)
	if !ok {
		return Fallback()
	}
	l, a, b := base.Lab()
	dark := colorful.Lab(l*0.8, a, b).Clamped()
	return Prominent{
		Default: strings.ToUpper(base.Hex()),
		Dark:    strings.ToUpper(dark.Hex()),
	}
}
