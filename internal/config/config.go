// Package config loads the project configuration from collectiongen.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultFilename is the project configuration file looked up when no
// explicit path is given.
const DefaultFilename = "collectiongen.toml"

// Config holds the project configuration.
type Config struct {
	// Patterns are the Go package patterns to scan for collections.
	Patterns []string `toml:"patterns"`
	// Manifest is the optional path to a YAML capability manifest.
	Manifest string `toml:"manifest"`
	// RegistryCache is the optional path of the on-disk registry snapshot.
	RegistryCache string `toml:"registry_cache"`
	// HelpSampleSize bounds the known-good types cited in help text.
	HelpSampleSize int `toml:"help_sample_size"`
	// GenerateComments enables explanatory comments in generated code.
	GenerateComments bool `toml:"generate_comments"`
	// FileSuffix is appended to snake-cased struct names to form generated filenames.
	FileSuffix string `toml:"file_suffix"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Patterns:         []string{"./..."},
		HelpSampleSize:   5,
		GenerateComments: true,
		FileSuffix:       "_collection.go",
	}
}

// Load reads configuration from the given path, layered over defaults.
// When path is empty, DefaultFilename is used if present; a missing default
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("loading %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if len(c.Patterns) == 0 {
		return errors.New("config: at least one package pattern is required")
	}

	if c.HelpSampleSize < 0 {
		return errors.New("config: help_sample_size must not be negative")
	}

	return nil
}
