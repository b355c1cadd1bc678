package colors

import (
	"fmt"
	"image"
	"image/color"
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func solidFrame(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSampleNilFrameFallsBack(t *testing.T) {
	got := Sample(nil)
	if got != Fallback() {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestSampleSolidFrame(t *testing.T) {
	got := Sample(solidFrame(color.RGBA{R: 200, G: 40, B: 40, A: 255}))
	if !hexPattern.MatchString(got.Default) {
		t.Fatalf("default color not uppercase hex: %q", got.Default)
	}
	if !hexPattern.MatchString(got.Dark) {
		t.Fatalf("dark color not uppercase hex: %q", got.Dark)
	}
	if got.Default == got.Dark {
		t.Fatalf("dark variant should differ from default: %+v", got)
	}
	// A red frame must yield a reddish dominant color.
	var r, g, b int
	if _, err := fmt.Sscanf(got.Default, "#%02X%02X%02X", &r, &g, &b); err != nil {
		t.Fatalf("parse %q: %v", got.Default, err)
	}
	if r <= g || r <= b {
		t.Fatalf("expected dominant red channel in %q", got.Default)
	}
}

func TestFallbackConstants(t *testing.T) {
	fb := Fallback()
	if fb.Default != "#4CA4BC" || fb.Dark != "#4C9CBC" {
		t.Fatalf("unexpected fallback %+v", fb)
	}
}
