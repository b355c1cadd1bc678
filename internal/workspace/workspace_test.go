package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAcquireCreatesUniqueDirectories(t *testing.T) {
	root := t.TempDir()

	a, err := Acquire(root)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer a.Release()
	b, err := Acquire(root)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer b.Release()

	if a.Path() == b.Path() {
		t.Fatalf("workspaces collide: %q", a.Path())
	}
	for _, ws := range []*Workspace{a, b} {
		info, err := os.Stat(ws.Path())
		if err != nil || !info.IsDir() {
			t.Fatalf("workspace missing: %v", err)
		}
		if !strings.HasPrefix(filepath.Base(ws.Path()), "tendies-") {
			t.Fatalf("unexpected workspace name %q", ws.Path())
		}
	}
}

func TestReleaseRemovesEverything(t *testing.T) {
	ws, err := Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	nested := filepath.Join(ws.Path(), "descriptors", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ws.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(ws.Path()); !os.IsNotExist(err) {
		t.Fatalf("workspace still present: %v", err)
	}
	// Second release is a no-op.
	if err := ws.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
}

func TestCleanStaleRemovesOnlyOldWorkspaces(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "tendies-old")
	fresh := filepath.Join(root, "tendies-new")
	foreign := filepath.Join(root, "unrelated")
	for _, dir := range []string{stale, fresh, foreign} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(foreign, old, old); err != nil {
		t.Fatal(err)
	}

	result := CleanStale(context.Background(), root, 24*time.Hour, nil)
	if result.Skipped {
		t.Fatal("sweep unexpectedly skipped")
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Removed) != 1 || result.Removed[0] != stale {
		t.Fatalf("unexpected removals: %v", result.Removed)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh workspace removed: %v", err)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Fatalf("foreign directory removed: %v", err)
	}
}

func TestCleanStaleMissingRoot(t *testing.T) {
	result := CleanStale(context.Background(), filepath.Join(t.TempDir(), "absent"), time.Hour, nil)
	if len(result.Errors) != 0 || len(result.Removed) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
