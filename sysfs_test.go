package lsblk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSectorCount(t *testing.T) {
	dir := t.TempDir()
	write := func(content string) string {
		t.Helper()
		path := filepath.Join(dir, "size")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	sectors, err := readSectorCount(write("1048576\n"))
	if err != nil {
		t.Fatalf("readSectorCount: %v", err)
	}
	if sectors == nil || *sectors != 1048576 {
		t.Fatalf("unexpected sectors %v", sectors)
	}

	// No trailing newline is still a valid value.
	sectors, err = readSectorCount(write("512"))
	if err != nil || sectors == nil || *sectors != 512 {
		t.Fatalf("unexpected result %v, %v", sectors, err)
	}

	// Unparseable contents are absent, not an error.
	sectors, err = readSectorCount(write("not-a-number\n"))
	if err != nil {
		t.Fatalf("parse failure must not be an error: %v", err)
	}
	if sectors != nil {
		t.Fatalf("unexpected sectors %d", *sectors)
	}

	_, err = readSectorCount(filepath.Join(dir, "missing"))
	var readFile *ReadFileError
	if !errors.As(err, &readFile) {
		t.Fatalf("expected ReadFileError, got %v", err)
	}
}

// Regular files have a zero device number, so a fake node's sysfs directory
// is <sys>/dev/block/0:0. The capacity and disk-name tests lean on that.
func fakeNode(t *testing.T, l *Lister, name string) *BlockDevice {
	t.Helper()
	node := filepath.Join(l.DevDir, name)
	if err := os.WriteFile(node, nil, 0o644); err != nil {
		t.Fatalf("create node: %v", err)
	}
	return l.NewFromCanonical(node)
}

func TestCapacityFromSysfs(t *testing.T) {
	l := newTestLister(t)
	d := fakeNode(t, l, "sda")

	sysfs := filepath.Join(l.SysDir, "dev", "block", "0:0")
	if err := os.MkdirAll(sysfs, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sysfs, "size"), []byte("2048\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	sectors, err := l.Capacity(d)
	if err != nil {
		t.Fatalf("Capacity: %v", err)
	}
	if sectors == nil || *sectors != 2048 {
		t.Fatalf("unexpected sectors %v", sectors)
	}
}

func TestCapacityMissingSizeFile(t *testing.T) {
	l := newTestLister(t)
	d := fakeNode(t, l, "sda")

	_, err := l.Capacity(d)
	var readFile *ReadFileError
	if !errors.As(err, &readFile) {
		t.Fatalf("expected ReadFileError, got %v", err)
	}
}

func TestDiskNameNonPartition(t *testing.T) {
	l := newTestLister(t)
	d := &BlockDevice{Name: "sda", FullName: filepath.Join(l.DevDir, "sda")}

	name, err := l.DiskName(d)
	if err != nil {
		t.Fatalf("DiskName: %v", err)
	}
	if name != "sda" {
		t.Fatalf("unexpected name %q", name)
	}
}

func TestDiskNameStructural(t *testing.T) {
	l := newTestLister(t)
	d := fakeNode(t, l, "sda1")
	d.PartUUID = strptr("9c7c2c4e-01")

	// Mirror the real layout: /sys/dev/block/<num> links into the device
	// tree, where a partition directory sits under its disk's.
	partDir := filepath.Join(l.SysDir, "devices", "pci0000:00", "block", "sda", "sda1")
	if err := os.MkdirAll(partDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	numDir := filepath.Join(l.SysDir, "dev", "block")
	if err := os.MkdirAll(numDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(partDir, filepath.Join(numDir, "0:0")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	name, err := l.DiskName(d)
	if err != nil {
		t.Fatalf("DiskName: %v", err)
	}
	if name != "sda" {
		t.Fatalf("unexpected parent %q", name)
	}
}

func TestDiskNamePrefixFallback(t *testing.T) {
	l := newTestLister(t)
	d := fakeNode(t, l, "nvme0n1p2")
	d.PartUUID = strptr("x")

	// The numbered sysfs entry is a plain directory, so the structural
	// parent walk lands on dev/block and the prefix scan takes over.
	if err := os.MkdirAll(filepath.Join(l.SysDir, "dev", "block", "0:0"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, disk := range []string{"sda", "nvme0n1"} {
		if err := os.MkdirAll(filepath.Join(l.SysDir, "block", disk), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	name, err := l.DiskName(d)
	if err != nil {
		t.Fatalf("DiskName: %v", err)
	}
	if name != "nvme0n1" {
		t.Fatalf("unexpected disk %q", name)
	}
}

func TestDiskNameByPrefixNoMatch(t *testing.T) {
	l := newTestLister(t)
	if err := os.MkdirAll(filepath.Join(l.SysDir, "block", "sda"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := l.diskNameByPrefix("vdb1"); err == nil {
		t.Fatal("expected an error for an unmatched partition")
	}
}

func TestMajorMinorDevNull(t *testing.T) {
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skipf("no /dev/null: %v", err)
	}
	d := &BlockDevice{Name: "null", FullName: "/dev/null"}
	major, minor, err := d.MajorMinor()
	if err != nil {
		t.Fatalf("MajorMinor: %v", err)
	}
	if major != 1 || minor != 3 {
		t.Fatalf("unexpected device number %d:%d", major, minor)
	}
}
