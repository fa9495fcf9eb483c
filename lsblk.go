// Package lsblk lists the block devices and mountpoints of the local machine
// by reading the /dev/disk/by-* symlink indexes, sysfs, and the kernel mount
// table. It spawns no processes, never wakes a sleeping drive, and holds no
// state between calls.
package lsblk

import (
	"path/filepath"
	"strings"
)

// Lister discovers block devices and mountpoints. All paths are fields so a
// caller can point discovery at an alternate tree, e.g. a mounted system
// image or a test fixture. Use NewLister for the standard kernel locations.
//
// A Lister keeps no state across calls; every method reads the current
// filesystem contents from scratch, and concurrent use is safe.
type Lister struct {
	// DevDir is the device node root, normally /dev. A record's Name is its
	// canonical node path with this prefix stripped.
	DevDir string
	// DiskDir holds the by-* symlink indexes, normally /dev/disk.
	DiskDir string
	// SysDir is the sysfs mount, normally /sys.
	SysDir string
	// MountsFile is the kernel mount table, normally /proc/mounts.
	MountsFile string
	// SkipBrokenLinks makes List drop symlinks that fail to resolve instead
	// of failing the whole listing. It does not apply to FromPath or
	// Populate, which always fail on a broken link because the broken entry
	// could be the very device being searched for.
	SkipBrokenLinks bool
}

// NewLister returns a Lister bound to the standard kernel locations.
func NewLister() *Lister {
	return &Lister{
		DevDir:     "/dev",
		DiskDir:    "/dev/disk",
		SysDir:     "/sys",
		MountsFile: "/proc/mounts",
	}
}

var std = NewLister()

// attrDir maps an attribute to its symlink index directory.
func (l *Lister) attrDir(a Attr) string {
	return filepath.Join(l.DiskDir, "by-"+string(a))
}

// NewFromCanonical builds an unpopulated record from an already-canonical
// node path. No I/O is performed and the path is not checked; use
// FromPathUnpopulated when the input may be relative or a symlink.
func (l *Lister) NewFromCanonical(full string) *BlockDevice {
	name := strings.TrimPrefix(full, l.DevDir+string(filepath.Separator))
	return &BlockDevice{Name: name, FullName: full}
}

// canonicalize resolves path to an absolute, symlink-free form.
func canonicalize(path string) (string, error) {
	full, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(full)
}

// List enumerates all block devices under the standard /dev layout.
func List() ([]*BlockDevice, error) { return std.List() }

// FromPath resolves a single device under the standard /dev layout.
func FromPath(path string) (*BlockDevice, error) { return std.FromPath(path) }

// FromPathUnpopulated resolves a device node under the standard /dev layout
// without populating any attributes.
func FromPathUnpopulated(path string) (*BlockDevice, error) {
	return std.FromPathUnpopulated(path)
}

// ListMounts reads /proc/mounts.
func ListMounts() ([]Mount, error) { return std.Mounts() }
