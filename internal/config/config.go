// Package config loads graphkind's optional TOML configuration file.
//
// Example graphkind.toml:
//
//	format      = "json"   # text | json
//	concurrency = 4        # graphs analysed in parallel
//	verbose     = false
//	time_format = "15:04:05.00"
//
// Every key is optional; missing keys keep their defaults. Command-line
// flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig reports a value outside its allowed domain or an
// unknown key.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is looked up in the working directory when no --config flag
// is given. Its absence is not an error.
const DefaultPath = "graphkind.toml"

// Config holds user-tunable settings.
type Config struct {
	Format      string `toml:"format"`
	Concurrency int    `toml:"concurrency"`
	Verbose     bool   `toml:"verbose"`
	TimeFormat  string `toml:"time_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:      "text",
		Concurrency: runtime.GOMAXPROCS(0),
		Verbose:     false,
		TimeFormat:  "15:04:05.00",
	}
}

// Load reads path on top of Default.
// An empty path tries DefaultPath and silently falls back to defaults when it
// does not exist; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format %q (want text or json)", ErrInvalidConfig, c.Format)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d (want >= 1)", ErrInvalidConfig, c.Concurrency)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty time_format", ErrInvalidConfig)
	}

	return nil
}
