package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sigreer/lsblk"
)

var (
	listDisks    bool
	listParts    bool
	listPhysical bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all block devices",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	l := newLister()
	devices, err := l.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listing block devices")
	}
	log.Debug().Int("devices", len(devices)).Msg("listing complete")

	devices = slices.DeleteFunc(devices, func(d *lsblk.BlockDevice) bool {
		switch {
		case listDisks && !d.IsDisk():
			return true
		case listParts && !d.IsPart():
			return true
		case listPhysical && !d.IsPhysical():
			return true
		}
		return false
	})
	slices.SortFunc(devices, func(a, b *lsblk.BlockDevice) int {
		return strings.Compare(a.Name, b.Name)
	})

	switch outputFormat() {
	case "json":
		printJSON(devices)
	case "yaml":
		printYAML(devices)
	default:
		printDeviceTable(l, devices)
	}
}

func printDeviceTable(l *lsblk.Lister, devices []*lsblk.BlockDevice) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tSIZE\tUUID\tLABEL\tPHYSICAL")
	for _, d := range devices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n",
			d.Name, devType(d), devSize(l, d), orDash(d.UUID), orDash(d.Label), d.IsPhysical())
	}
	w.Flush()
}

func devType(d *lsblk.BlockDevice) string {
	if d.IsPart() {
		return "part"
	}
	return "disk"
}

// devSize renders the device capacity; sysfs reports 512-byte sectors.
func devSize(l *lsblk.Lister, d *lsblk.BlockDevice) string {
	sectors, err := l.Capacity(d)
	if err != nil || sectors == nil {
		return "-"
	}
	return humanize.IBytes(*sectors * 512)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
