// Package config loads the optional vsprereq.toml tool configuration
// from the user's home directory. A missing file yields the defaults;
// only unreadable TOML is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"vsprereq/internal/messages"
)

// FileName is the config file looked up in the home directory.
const FileName = "vsprereq.toml"

// Config is the tool configuration.
type Config struct {
	// Locale is the LCID used when asking for instance display names.
	// Defaults to 0x0400, the user's own locale.
	Locale uint32 `toml:"locale"`

	// SetupPath overrides the discovered maintenance tool location.
	SetupPath string `toml:"setup_path"`

	// AssumeYes skips the confirmation prompt, answering yes.
	AssumeYes bool `toml:"assume_yes"`

	// IncludeOptional adds optional components to export requests.
	IncludeOptional bool `toml:"include_optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale:          0x0400,
		IncludeOptional: true,
	}
}

// Load reads the user's config file, falling back to defaults when the
// file or the home directory itself is missing.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(home, FileName))
}

// LoadFile reads one config file leniently: unknown keys are ignored
// and absent keys keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigUnreadableFmt, path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	return cfg, nil
}
