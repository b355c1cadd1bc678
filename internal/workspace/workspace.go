// Package workspace manages the scratch directory a single package build runs
// in. Acquisition hands back a release function the caller defers immediately,
// so the directory is removed on every exit path; nothing a build writes
// survives outside the published archive.
package workspace

import (
	"fmt"
	"os"
	"sync"
)

// Workspace is an exclusive scratch directory for one pipeline run.
type Workspace struct {
	path    string
	release sync.Once
}

// Acquire creates a uniquely named workspace directory under root. The root
// is created when missing. Callers must defer Release.
func Acquire(root string) (*Workspace, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("ensure staging root: %w", err)
	}
	dir, err := os.MkdirTemp(root, "tendies-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{path: dir}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Release removes the workspace and everything in it. Safe to call more than
// once; only the first call does work.
func (w *Workspace) Release() error {
	var err error
	w.release.Do(func() {
		err = os.RemoveAll(w.path)
	})
	return err
}
