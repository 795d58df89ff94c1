// Package config loads the optional YAML configuration file for the CLI.
// Every setting has a working default, so a config file is never
// required; command-line flags and the environment override whatever the
// file provides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDataFile is the catalog path used when nothing overrides it.
const DefaultDataFile = "library.json"

// DefaultConfigFile is the config file looked up in the working directory
// when no --config flag is given.
const DefaultConfigFile = "libman.yaml"

// EnvDataFile is the environment variable that overrides the catalog
// path. A --file flag overrides it in turn.
const EnvDataFile = "LIBMAN_DATA_FILE"

// Config holds all libman configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
}

// DataConfig configures the catalog file.
type DataConfig struct {
	File string `yaml:"file"` // Path to the catalog JSON file
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" or "info"
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Data: DataConfig{File: DefaultDataFile},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads the config file at path and overlays it on the defaults.
// With an empty path, DefaultConfigFile is tried and silently skipped if
// absent; an explicitly named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Data.File == "" {
		cfg.Data.File = DefaultDataFile
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// FromEnv overlays environment variables on cfg. Only EnvDataFile is
// consulted today.
func FromEnv(cfg Config) Config {
	if file := os.Getenv(EnvDataFile); file != "" {
		cfg.Data.File = file
	}
	return cfg
}
