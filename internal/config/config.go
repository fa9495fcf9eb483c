package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sigreer/lsblk"
)

type Config struct {
	// Output is the default output format: "table", "json", or "yaml".
	Output string `yaml:"output,omitempty"`
	// SkipBrokenLinks drops symlinks that fail to resolve instead of
	// failing the whole listing.
	SkipBrokenLinks bool `yaml:"skip_broken_links,omitempty"`
	// Roots points discovery at an alternate tree, e.g. a mounted image.
	Roots Roots `yaml:"roots,omitempty"`
}

type Roots struct {
	Dev    string `yaml:"dev,omitempty"`
	Disk   string `yaml:"disk,omitempty"`
	Sys    string `yaml:"sys,omitempty"`
	Mounts string `yaml:"mounts,omitempty"`
}

// defaultConfig provides baseline settings pointing at the live system
var defaultConfig = Config{
	Output: "table",
	Roots: Roots{
		Dev:    "/dev",
		Disk:   "/dev/disk",
		Sys:    "/sys",
		Mounts: "/proc/mounts",
	},
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/lsblk/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/lsblk/config.yaml"),
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	cfg := defaultConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults for anything the file left out
	if cfg.Output == "" {
		cfg.Output = defaultConfig.Output
	}
	if cfg.Roots.Dev == "" {
		cfg.Roots.Dev = defaultConfig.Roots.Dev
	}
	if cfg.Roots.Disk == "" {
		cfg.Roots.Disk = filepath.Join(cfg.Roots.Dev, "disk")
	}
	if cfg.Roots.Sys == "" {
		cfg.Roots.Sys = defaultConfig.Roots.Sys
	}
	if cfg.Roots.Mounts == "" {
		cfg.Roots.Mounts = defaultConfig.Roots.Mounts
	}

	return &cfg, nil
}

// Lister builds a lsblk.Lister bound to the configured roots and policy.
func (c *Config) Lister() *lsblk.Lister {
	return &lsblk.Lister{
		DevDir:          c.Roots.Dev,
		DiskDir:         c.Roots.Disk,
		SysDir:          c.Roots.Sys,
		MountsFile:      c.Roots.Mounts,
		SkipBrokenLinks: c.SkipBrokenLinks,
	}
}
