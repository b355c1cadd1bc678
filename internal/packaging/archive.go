package packaging

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// zipTree archives the subtree at root/baseDir into outPath. Entry names are
// relative to root so the archive's internal root is baseDir itself.
// Directory entries are written explicitly; the floating layer's assets
// directory is empty and must still survive a round trip.
func zipTree(root, baseDir, outPath string) (err error) {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	writer := zip.NewWriter(out)
	defer func() {
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
	}()

	source := filepath.Join(root, baseDir)
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if entry.IsDir() {
			_, err := writer.Create(name + "/")
			return err
		}

		header, err := writer.Create(name)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(header, file)
		return err
	})
}
