package main

import (
	"flag"
	"fmt"

	"github.com/vedantwpatil/autoclicker/internal/config"
	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

type options struct {
	configPath string
	envPath    string
	headless   bool

	rate     float64
	repeat   uint
	region   string
	display  int
	hotkey   string
	logLevel string
	logFile  string

	// set records which flags were given explicitly
	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{set: map[string]bool{}}
	defaults := config.NewConfig()

	fs.StringVar(&opts.configPath, "config", "autoclicker.yaml", "path to configuration file (ignored if missing)")
	fs.StringVar(&opts.envPath, "env", ".env", "path to .env file (ignored if missing)")
	fs.BoolVar(&opts.headless, "headless", false, "start clicking at once without the terminal panel")
	fs.Float64Var(&opts.rate, "rate", defaults.Rate, "clicks per second")
	fs.UintVar(&opts.repeat, "repeat", defaults.Repeat, "clicks per run, 0 for no limit")
	fs.StringVar(&opts.region, "region", "", `stop when the pointer leaves "x1,y1,x2,y2"`)
	fs.IntVar(&opts.display, "display", defaults.Display, "stop when the pointer leaves this display, -1 to disable")
	fs.StringVar(&opts.hotkey, "hotkey", defaults.Hotkey, `toggle hotkey such as "ctrl+shift+d", empty to disable`)
	fs.StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "debug, info, warn or error")
	fs.StringVar(&opts.logFile, "log-file", defaults.Log.File, "log file used while the panel owns the terminal")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// apply copies every explicitly given flag over the file configuration
func (o *options) apply(cfg *config.Config) error {
	if o.set["rate"] {
		cfg.Rate = o.rate
	}
	if o.set["repeat"] {
		cfg.Repeat = o.repeat
	}
	if o.set["region"] {
		if o.region == "" {
			cfg.Region = nil
		} else {
			r, err := geometry.ParseRect(o.region)
			if err != nil {
				return fmt.Errorf("flag -region: %w", err)
			}
			cfg.Region = &r
		}
	}
	if o.set["display"] {
		cfg.Display = o.display
	}
	if o.set["hotkey"] {
		cfg.Hotkey = o.hotkey
	}
	if o.set["log-level"] {
		cfg.Log.Level = o.logLevel
	}
	if o.set["log-file"] {
		cfg.Log.File = o.logFile
	}
	return nil
}
