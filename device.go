package lsblk

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Attr identifies one /dev/disk/by-* symlink index. Its value is the
// directory suffix, so the tables below are the only place the farm layout
// is spelled out.
type Attr string

const (
	// AttrDiskSeq is the identity-defining index: by-diskseq normally has
	// an entry for every block device the kernel knows about.
	AttrDiskSeq Attr = "diskseq"

	AttrPath      Attr = "path"
	AttrUUID      Attr = "uuid"
	AttrPartUUID  Attr = "partuuid"
	AttrLabel     Attr = "label"
	AttrPartLabel Attr = "partlabel"
	AttrID        Attr = "id"
)

// mergeAttrs are the non-identity indexes folded into the records seeded
// from by-diskseq. Their order does not affect the result: each pass writes
// only its own slot, keyed by canonical device path.
var mergeAttrs = []Attr{AttrPath, AttrUUID, AttrPartUUID, AttrLabel, AttrPartLabel, AttrID}

var allAttrs = append([]Attr{AttrDiskSeq}, mergeAttrs...)

// BlockDevice is one block device node with every identity the by-* indexes
// hold for it. Attribute fields are nil when the corresponding index has no
// entry for the device.
type BlockDevice struct {
	// Name is the canonical node path with the device root stripped,
	// e.g. "sda1" or "mapper/root".
	Name string `json:"name" yaml:"name"`
	// FullName is the absolute, symlink-resolved node path, e.g.
	// "/dev/sda1". Two records with the same FullName are the same device.
	FullName string `json:"fullname" yaml:"fullname"`

	// DiskSeq is the kernel disk sequence number, from by-diskseq.
	DiskSeq *string `json:"diskseq,omitempty" yaml:"diskseq,omitempty"`
	// Path is the stable hardware path, from by-path. Not a filesystem path.
	Path *string `json:"path,omitempty" yaml:"path,omitempty"`
	// UUID is the filesystem UUID, from by-uuid.
	UUID *string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	// PartUUID is the partition UUID, from by-partuuid. Distinct from UUID.
	PartUUID *string `json:"partuuid,omitempty" yaml:"partuuid,omitempty"`
	// Label is the filesystem label, from by-label.
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
	// PartLabel is the partition label, from by-partlabel.
	PartLabel *string `json:"partlabel,omitempty" yaml:"partlabel,omitempty"`
	// ID is the hardware identifier, from by-id.
	ID *string `json:"id,omitempty" yaml:"id,omitempty"`
}

// slot returns the storage for one attribute, or nil for an unknown Attr.
func (d *BlockDevice) slot(a Attr) **string {
	switch a {
	case AttrDiskSeq:
		return &d.DiskSeq
	case AttrPath:
		return &d.Path
	case AttrUUID:
		return &d.UUID
	case AttrPartUUID:
		return &d.PartUUID
	case AttrLabel:
		return &d.Label
	case AttrPartLabel:
		return &d.PartLabel
	case AttrID:
		return &d.ID
	}
	return nil
}

// List returns every block device known to the by-* indexes, one record per
// canonical device node with all discovered attributes merged in. Result
// order is unspecified; sort by Name or FullName if determinism is needed.
func (l *Lister) List() ([]*BlockDevice, error) {
	devices := make(map[string]*BlockDevice)

	err := walkSymlinks(l.attrDir(AttrDiskSeq), l.SkipBrokenLinks, func(target, name string) bool {
		d := l.NewFromCanonical(target)
		d.DiskSeq = &name
		devices[target] = d
		return true
	})
	if err != nil {
		return nil, err
	}

	for _, a := range mergeAttrs {
		err := walkSymlinks(l.attrDir(a), l.SkipBrokenLinks, func(target, name string) bool {
			d, ok := devices[target]
			if !ok {
				// by-diskseq is not always complete; first contact through
				// an attribute index still creates a record.
				d = l.NewFromCanonical(target)
				devices[target] = d
			}
			*d.slot(a) = &name
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return slices.Collect(maps.Values(devices)), nil
}

// FromPath resolves a single device from any path that is, or leads through
// symlinks to, a device node, and populates every attribute for it.
//
// Each call scans all seven by-* indexes until the matching link turns up,
// so resolving several devices this way is far more expensive than one List
// call; prefer List when enumerating.
func (l *Lister) FromPath(path string) (*BlockDevice, error) {
	d, err := l.FromPathUnpopulated(path)
	if err != nil {
		return nil, err
	}
	for _, a := range allAttrs {
		if _, _, err := l.Populate(d, a); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// FromPathUnpopulated is FromPath without the index scans: only Name and
// FullName are set. Fill individual attributes later with Populate.
func (l *Lister) FromPathUnpopulated(path string) (*BlockDevice, error) {
	full, err := canonicalize(path)
	if err != nil {
		return nil, &BadSymlinkError{Path: path, Err: err}
	}
	return l.NewFromCanonical(full), nil
}

// Populate fills one attribute slot by scanning that attribute's index for a
// link resolving to the device's canonical path, stopping at the first
// match. It returns the discovered value and true, or false with a nil
// error when the index simply has no entry for the device. Broken links
// abort the scan regardless of SkipBrokenLinks.
func (l *Lister) Populate(d *BlockDevice, a Attr) (string, bool, error) {
	slot := d.slot(a)
	if slot == nil {
		return "", false, fmt.Errorf("unknown attribute %q", a)
	}

	var value string
	var found bool
	err := walkSymlinks(l.attrDir(a), false, func(target, name string) bool {
		if target != d.FullName {
			return true
		}
		value, found = name, true
		return false
	})
	if err != nil || !found {
		return "", false, err
	}
	*slot = &value
	return value, true, nil
}

// IsPart reports whether the device is a partition. Partition identity is
// keyed on the by-partuuid index: a filesystem UUID also appears on
// whole-disk filesystems, so UUID presence cannot tell the two apart.
func (d *BlockDevice) IsPart() bool {
	return d.PartUUID != nil
}

// IsDisk reports whether the device is a whole disk, i.e. not a partition.
func (d *BlockDevice) IsDisk() bool {
	return !d.IsPart()
}

// IsPhysical reports whether the device exists as hardware, i.e. it carries
// a by-path entry. eMMC devices are physical but never receive one, so the
// mmcblk name family is carved out explicitly.
func (d *BlockDevice) IsPhysical() bool {
	return d.Path != nil || strings.HasPrefix(d.Name, "mmcblk")
}
