package lsblk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWalkSymlinksMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "no-such-index")
	err := walkSymlinks(dir, false, func(target, name string) bool {
		t.Fatalf("unexpected entry %s -> %s", name, target)
		return true
	})
	if err != nil {
		t.Fatalf("missing directory must not be an error: %v", err)
	}
}

func TestWalkSymlinksNotADir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := walkSymlinks(path, false, func(target, name string) bool { return true })
	var readDir *ReadDirError
	if !errors.As(err, &readDir) {
		t.Fatalf("expected ReadDirError, got %v", err)
	}
}

func TestWalkSymlinksStopsEarly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "node")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, name := range []string{"a", "b", "c"} {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Fatalf("symlink: %v", err)
		}
	}

	calls := 0
	err := walkSymlinks(dir, false, func(target, name string) bool {
		calls++
		return false
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected the walk to stop after 1 entry, saw %d", calls)
	}
}

func TestWalkSymlinksSkipBroken(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "node")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "good")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dead")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	var seen []string
	err := walkSymlinks(dir, true, func(target, name string) bool {
		seen = append(seen, name)
		return true
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(seen) != 1 || seen[0] != "good" {
		t.Fatalf("unexpected entries %v", seen)
	}
}
