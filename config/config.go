// Package config loads run settings from defaults, an optional TOML file and
// ISLANDS_-prefixed environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"islands/meta"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ISLANDS_"

type Config struct {
	Log        Log        `toml:"log" envPrefix:"LOG_"`
	Experiment Experiment `toml:"experiment" envPrefix:"EXPERIMENT_"`
}

type Log struct {
	Level string `toml:"level" env:"LEVEL"` // zerolog level name
}

// Experiment controls a batch of random self-play games.
type Experiment struct {
	Name   string `toml:"name" env:"NAME"`
	Sizes  []int  `toml:"sizes" env:"SIZES" envSeparator:","`
	Games  int    `toml:"games" env:"GAMES"` // Per size
	Seed   uint64 `toml:"seed" env:"SEED"`
	OutDir string `toml:"out_dir" env:"OUT_DIR"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Experiment: Experiment{
			Name:   "islands",
			Sizes:  []int{3, 5, 7, meta.DEFAULT_SIZE},
			Games:  meta.DEFAULT_GAMES,
			Seed:   1,
			OutDir: meta.DEFAULT_OUT_DIR,
		},
	}
}

// Load applies the TOML file at path (skipped when empty) and then the
// environment on top of Default, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Experiment.Name == "" {
		errs = append(errs, errors.New("experiment name must not be empty"))
	}
	if len(c.Experiment.Sizes) == 0 {
		errs = append(errs, errors.New("experiment needs at least one board size"))
	}
	for _, size := range c.Experiment.Sizes {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("board size must be positive, got %d", size))
		}
	}
	if c.Experiment.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Experiment.Games))
	}
	if c.Experiment.OutDir == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
