package packaging

import (
	"os"
	"path/filepath"

	"posterforge/internal/naming"
)

// layout resolves every directory of the package tree rooted at the
// workspace:
//
//	descriptors/<PackageUUID>/
//	  providerInfo.plist + posterkit identifier files
//	  versions/1/contents/<name>-<tag>.wallpaper/
//	    <name>_Background-<tag>.ca/ assets/ + documents
//	    <name>_Floating-<tag>.ca/   assets/ + documents
//	    Wallpaper.plist
type layout struct {
	descriptorsDir   string
	descriptorDir    string
	wallpaperDir     string
	backgroundDir    string
	floatingDir      string
	backgroundAssets string
	floatingAssets   string
}

func newLayout(workspaceDir, packageUUID string, names naming.Names) layout {
	descriptorsDir := filepath.Join(workspaceDir, "descriptors")
	descriptorDir := filepath.Join(descriptorsDir, packageUUID)
	wallpaperDir := filepath.Join(descriptorDir, "versions", "1", "contents", names.WallpaperFolder)
	backgroundDir := filepath.Join(wallpaperDir, names.BackgroundBundle)
	floatingDir := filepath.Join(wallpaperDir, names.FloatingBundle)
	return layout{
		descriptorsDir:   descriptorsDir,
		descriptorDir:    descriptorDir,
		wallpaperDir:     wallpaperDir,
		backgroundDir:    backgroundDir,
		floatingDir:      floatingDir,
		backgroundAssets: filepath.Join(backgroundDir, "assets"),
		floatingAssets:   filepath.Join(floatingDir, "assets"),
	}
}

// create materializes the leaf directories; parents come along for free.
func (l layout) create() error {
	for _, dir := range []string{l.backgroundAssets, l.floatingAssets} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
