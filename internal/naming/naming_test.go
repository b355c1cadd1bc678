package naming

import "testing"

func TestDerive(t *testing.T) {
	names := Derive("Sunset", 1290, 2796, 3)

	if names.ResolutionTag != "1290w-2796h@3x~iphone" {
		t.Fatalf("unexpected tag %q", names.ResolutionTag)
	}
	if names.BackgroundBundle != "Sunset_Background-1290w-2796h@3x~iphone.ca" {
		t.Fatalf("unexpected background bundle %q", names.BackgroundBundle)
	}
	if names.FloatingBundle != "Sunset_Floating-1290w-2796h@3x~iphone.ca" {
		t.Fatalf("unexpected floating bundle %q", names.FloatingBundle)
	}
	if names.WallpaperFolder != "Sunset-1290w-2796h@3x~iphone.wallpaper" {
		t.Fatalf("unexpected wallpaper folder %q", names.WallpaperFolder)
	}
	if names.OutputFile != "Sunset.tendies" {
		t.Fatalf("unexpected output file %q", names.OutputFile)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	a := Derive("A", 1179, 2556, 3)
	b := Derive("A", 1179, 2556, 3)
	if a != b {
		t.Fatalf("derivation not deterministic: %+v vs %+v", a, b)
	}
}

func TestDefaultName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/videos/sunset_loop.mp4", "SunsetLoop"},
		{"rain-on-glass.mov", "RainOnGlass"},
		{"clip.mp4", "Clip"},
		{"ALREADY.mp4", "Already"},
		{".mp4", "CustomWallpaper"},
	}
	for _, tc := range cases {
		if got := DefaultName(tc.path); got != tc.want {
			t.Fatalf("DefaultName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
