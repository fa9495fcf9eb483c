package lsblk

import (
	"os"
	"path/filepath"
)

// walkSymlinks visits every symbolic link in dir, resolving each to its
// canonical target, and calls fn with the target and the link's own name.
// Returning false from fn stops the walk early.
//
// A missing directory yields no entries and no error: not every system
// populates every by-* index. Entries that are not symlinks are ignored.
// A link that fails to resolve either aborts the walk with a
// BadSymlinkError or, when skipBroken is set, is silently dropped.
func walkSymlinks(dir string, skipBroken bool, fn func(target, name string) bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ReadDirError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		linkPath := filepath.Join(dir, entry.Name())
		target, err := filepath.EvalSymlinks(linkPath)
		if err != nil {
			if skipBroken {
				continue
			}
			return &BadSymlinkError{Path: linkPath, Err: err}
		}
		if !fn(target, entry.Name()) {
			return nil
		}
	}
	return nil
}
