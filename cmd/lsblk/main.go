package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sigreer/lsblk"
	"github.com/sigreer/lsblk/internal/config"
	"github.com/sigreer/lsblk/internal/version"
)

var (
	cfgFile    string
	skipBroken bool
	verbose    bool
	jsonOut    bool
	outFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "lsblk",
	Short: "Block device and mountpoint discovery",
	Long: `lsblk enumerates block devices by reading the /dev/disk/by-* symlink
indexes and reports mountpoints from the kernel mount table. Everything
comes from kernel-exposed files: no subprocesses, no drive wake-ups.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lsblk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

var cfg *config.Config

func loadConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	c, err := config.Load(cfgFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", cfgFile).Msg("loading config")
	}
	cfg = c
	return cfg
}

// newLister builds a Lister from the config file plus command-line overrides.
func newLister() *lsblk.Lister {
	l := loadConfig().Lister()
	if skipBroken {
		l.SkipBrokenLinks = true
	}
	log.Debug().
		Str("disk", l.DiskDir).
		Str("mounts", l.MountsFile).
		Bool("skip_broken", l.SkipBrokenLinks).
		Msg("discovery roots")
	return l
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/lsblk/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&skipBroken, "skip-broken", false, "skip symlinks that fail to resolve instead of failing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "", "output format: table, json, or yaml")

	listCmd.Flags().BoolVar(&listDisks, "disks", false, "only whole disks")
	listCmd.Flags().BoolVar(&listParts, "parts", false, "only partitions")
	listCmd.Flags().BoolVar(&listPhysical, "physical", false, "only physical devices")

	resolveCmd.Flags().StringVar(&resolveUUID, "uuid", "", "look the device up by filesystem UUID instead of path")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(mountsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
