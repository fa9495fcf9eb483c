package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sigreer/lsblk"
)

var resolveUUID string

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Resolve a single device by path or filesystem UUID",
	Long: `Resolve one block device and print its fully populated record.

The argument may be the device node itself or any symlink that leads to it,
such as /dev/disk/by-label/root. With --uuid the device is looked up by its
filesystem UUID instead of a path.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) {
	l := newLister()

	var dev *lsblk.BlockDevice
	switch {
	case resolveUUID != "":
		if _, err := uuid.Parse(resolveUUID); err != nil {
			log.Fatal().Err(err).Str("uuid", resolveUUID).Msg("not a valid filesystem UUID")
		}
		devices, err := l.List()
		if err != nil {
			log.Fatal().Err(err).Msg("listing block devices")
		}
		for _, d := range devices {
			if d.UUID != nil && *d.UUID == resolveUUID {
				dev = d
				break
			}
		}
		if dev == nil {
			log.Fatal().Str("uuid", resolveUUID).Msg("no device with that filesystem UUID")
		}
	case len(args) == 1:
		var err error
		dev, err = l.FromPath(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("path", args[0]).Msg("resolving device")
		}
	default:
		log.Fatal().Msg("a device path or --uuid is required")
	}

	switch outputFormat() {
	case "yaml":
		printYAML(dev)
	default:
		printJSON(dev)
	}
}
