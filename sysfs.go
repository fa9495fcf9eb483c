package lsblk

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// MajorMinor stats the device node and splits its kernel device number into
// major and minor parts.
func (l *Lister) MajorMinor(d *BlockDevice) (uint32, uint32, error) {
	var stat unix.Stat_t
	if err := unix.Stat(d.FullName, &stat); err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", d.FullName, err)
	}
	rdev := uint64(stat.Rdev)
	return unix.Major(rdev), unix.Minor(rdev), nil
}

// Sysfs returns the device's sysfs directory. The directory is addressed by
// device number, so it resolves for any block device regardless of name.
func (l *Lister) Sysfs(d *BlockDevice) (string, error) {
	major, minor, err := l.MajorMinor(d)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.SysDir, "dev", "block", fmt.Sprintf("%d:%d", major, minor)), nil
}

// Capacity reads the device's size from sysfs, in 512-byte sectors;
// multiply by 512 for bytes. A size file whose contents fail to parse is
// reported as absent (nil, nil) rather than as an error.
func (l *Lister) Capacity(d *BlockDevice) (*uint64, error) {
	sysfs, err := l.Sysfs(d)
	if err != nil {
		return nil, err
	}
	return readSectorCount(filepath.Join(sysfs, "size"))
}

func readSectorCount(path string) (*uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadFileError{Path: path, Err: err}
	}
	sectors, err := strconv.ParseUint(strings.TrimSuffix(string(data), "\n"), 10, 64)
	if err != nil {
		return nil, nil
	}
	return &sectors, nil
}

// DiskName returns the name of the disk backing the device: the device's own
// name for a disk, the parent disk's name for a partition. The parent is
// found by walking one level up from the partition's sysfs directory; when
// that walk fails, the partition name is matched against the flat sysfs
// block listing by prefix instead.
func (l *Lister) DiskName(d *BlockDevice) (string, error) {
	if !d.IsPart() {
		return d.Name, nil
	}

	sysfs, err := l.Sysfs(d)
	if err != nil {
		return "", err
	}
	// Resolve the numbered entry before taking the parent: a lexical ".."
	// would be cleaned away without ever following the symlink.
	if resolved, err := filepath.EvalSymlinks(sysfs); err == nil {
		if name := filepath.Base(filepath.Dir(resolved)); name != "block" && name != "/" && name != "." {
			return name, nil
		}
	}
	return l.diskNameByPrefix(d.Name)
}

// diskNameByPrefix scans <SysDir>/block for the disk whose name prefixes the
// partition name. The longest match wins so nvme0n1p1 resolves to nvme0n1
// rather than a shorter sibling.
func (l *Lister) diskNameByPrefix(part string) (string, error) {
	dir := filepath.Join(l.SysDir, "block")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &ReadDirError{Path: dir, Err: err}
	}

	best := ""
	for _, entry := range entries {
		name := entry.Name()
		if name != part && strings.HasPrefix(part, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return "", fmt.Errorf("no disk in %s matches partition %s", dir, part)
	}
	return best, nil
}

// MajorMinor is the device's kernel device number, looked up under the
// standard /sys layout.
func (d *BlockDevice) MajorMinor() (uint32, uint32, error) { return std.MajorMinor(d) }

// Sysfs is the device's sysfs directory under the standard /sys layout.
func (d *BlockDevice) Sysfs() (string, error) { return std.Sysfs(d) }

// Capacity is the device's size in 512-byte sectors under the standard /sys
// layout.
func (d *BlockDevice) Capacity() (*uint64, error) { return std.Capacity(d) }

// DiskName is the backing disk's name under the standard /sys layout.
func (d *BlockDevice) DiskName() (string, error) { return std.DiskName(d) }
