package lsblk

import (
	"bufio"
	"os"
	"strings"
)

// Mount is one row of the kernel mount table.
//
// Mounts are not matched against BlockDevice records here; associate the two
// by comparing Device with a record's Name or FullName.
type Mount struct {
	// Device is the source as written by the kernel: a node path for real
	// devices, a synthetic name (tmpfs, zram0) otherwise.
	Device string `json:"device" yaml:"device"`
	// Mountpoint is the target directory. The kernel octal-escapes
	// whitespace and some punctuation (e.g. "\040" for a space); the
	// escapes are passed through undecoded.
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	// FSType is the filesystem type, e.g. "ext4".
	FSType string `json:"fstype" yaml:"fstype"`
	// MountOpts is the raw comma-separated option string. Use Opts for the
	// decomposed form.
	MountOpts string `json:"mountopts" yaml:"mountopts"`
}

// MountOpt is a single mount option: a bare flag (Value nil) or key=value.
type MountOpt struct {
	Name  string
	Value *string
}

// Mounts reads the mount table, one record per well-formed line. The two
// trailing dump/fsck fields (always "0 0") are dropped, and a line with
// fewer than four remaining fields is skipped: the table is kernel-authored
// and a short line is noise, not a reason to fail the listing.
func (l *Lister) Mounts() ([]Mount, error) {
	f, err := os.Open(l.MountsFile)
	if err != nil {
		return nil, &ReadFileError{Path: l.MountsFile, Err: err}
	}
	defer f.Close()

	var mounts []Mount
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), " 0 0")
		fields := strings.SplitN(line, " ", 5)
		if len(fields) < 4 {
			continue
		}
		mounts = append(mounts, Mount{
			Device:     fields[0],
			Mountpoint: fields[1],
			FSType:     fields[2],
			MountOpts:  fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadFileError{Path: l.MountsFile, Err: err}
	}
	return mounts, nil
}

// Opts splits the raw option string into individual options, in table
// order. Only the first '=' in a token separates key from value, so values
// like "zstd:1" or "subvol=/root" survive intact.
func (m Mount) Opts() []MountOpt {
	if m.MountOpts == "" {
		return nil
	}
	var opts []MountOpt
	for _, tok := range strings.Split(m.MountOpts, ",") {
		name, value, found := strings.Cut(tok, "=")
		opt := MountOpt{Name: name}
		if found {
			opt.Value = &value
		}
		opts = append(opts, opt)
	}
	return opts
}
