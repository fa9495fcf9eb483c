package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "List mountpoints from the kernel mount table",
	Run:   runMounts,
}

func runMounts(cmd *cobra.Command, args []string) {
	l := newLister()
	mounts, err := l.Mounts()
	if err != nil {
		log.Fatal().Err(err).Msg("reading mount table")
	}
	log.Debug().Int("mounts", len(mounts)).Msg("mount table read")

	switch outputFormat() {
	case "json":
		printJSON(mounts)
	case "yaml":
		printYAML(mounts)
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "DEVICE\tMOUNTPOINT\tFSTYPE\tOPTIONS")
		for _, m := range mounts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Device, m.Mountpoint, m.FSType, m.MountOpts)
		}
		w.Flush()
	}
}
