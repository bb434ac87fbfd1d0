package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// config drives a benchmark run. Every field can come from the TOML file
// given by --config; flags set explicitly on the command line win.
type config struct {
	Keys     int    `toml:"keys"`
	Ops      int    `toml:"ops"`
	Preload  int    `toml:"preload"`
	FindPct  int    `toml:"find_pct"`
	RemPct   int    `toml:"remove_pct"`
	Seed     int64  `toml:"seed"`
	HTTP     string `toml:"http"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Keys:     10_000,
		Ops:      1_000_000,
		Preload:  0,
		FindPct:  70,
		RemPct:   10,
		Seed:     1,
		HTTP:     "",
		LogLevel: "info",
	}
}

// registerFlags binds c's fields to fs; c carries the flag defaults.
func registerFlags(fs *pflag.FlagSet, c *config) *string {
	path := fs.String("config", "", "TOML config file (flags override it)")
	fs.IntVar(&c.Keys, "keys", c.Keys, "keyspace size")
	fs.IntVar(&c.Ops, "ops", c.Ops, "number of operations to run")
	fs.IntVar(&c.Preload, "preload", c.Preload, "entries inserted before the run (0 = keys/2)")
	fs.IntVar(&c.FindPct, "finds", c.FindPct, "find percentage [0..100]")
	fs.IntVar(&c.RemPct, "removes", c.RemPct, "remove percentage [0..100]; the rest are inserts")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.HTTP, "http", c.HTTP, "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug | info | warn | error")
	return path
}

// resolve loads the optional file and re-applies the flags that were set.
func resolve(fs *pflag.FlagSet, path string, fromFlags config) (config, error) {
	c := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "read config")
		}
		if err := toml.Unmarshal(data, &c); err != nil {
			return c, errors.Wrapf(err, "parse config %s", path)
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "keys":
			c.Keys = fromFlags.Keys
		case "ops":
			c.Ops = fromFlags.Ops
		case "preload":
			c.Preload = fromFlags.Preload
		case "finds":
			c.FindPct = fromFlags.FindPct
		case "removes":
			c.RemPct = fromFlags.RemPct
		case "seed":
			c.Seed = fromFlags.Seed
		case "http":
			c.HTTP = fromFlags.HTTP
		case "log-level":
			c.LogLevel = fromFlags.LogLevel
		}
	})
	return c, c.validate()
}

func (c config) validate() error {
	if c.Keys <= 0 {
		return errors.Errorf("keys must be > 0, got %d", c.Keys)
	}
	if c.Ops < 0 {
		return errors.Errorf("ops must be >= 0, got %d", c.Ops)
	}
	if c.FindPct < 0 || c.RemPct < 0 || c.FindPct+c.RemPct > 100 {
		return errors.Errorf("finds (%d) + removes (%d) must be within [0..100]", c.FindPct, c.RemPct)
	}
	return nil
}
