package cfg

import (
	"cmp"
	"fmt"
	"time"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Opts are the global command-line options, shared by every command.
// Values come from flags or from the environment.
type Opts struct {
	ConfigPath string `long:"config" env:"SITE_CONFIG" default:"site.yml" description:"Path to the site configuration file"`
	Timezone   string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for feed timestamps (e.g., UTC, America/Chicago)"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Init builds the process-wide configuration from parsed options and
// makes it available via Get.
func Init(opts *Opts) *Cfg {
	cfg := &Cfg{
		ConfigPath: opts.ConfigPath,
		Timezone:   opts.Timezone,
		Debug:      opts.Debug,
		Version:    GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Init() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return err
	}
	time.Local = loc
	return nil
}
