// Package config resolves rawexplorer settings from defaults, a YAML config
// file, RAWEXPLORER_* environment variables and command-line flags.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/explorer"
)

// EnvPrefix prefixes every environment variable, e.g. RAWEXPLORER_SCHEMA.
const EnvPrefix = "RAWEXPLORER"

// Keys understood in the config file; flags bind to the same names.
const (
	KeySchema     = "schema"
	KeyDump       = "dump"
	KeyDocBase    = "doc_base"
	KeyMode       = "mode"
	KeyDriver     = "driver"
	KeyMaxDepth   = "max_depth"
	KeyDuplicates = "duplicates"
	KeyDebug      = "debug"
)

type Config struct {
	Schema     string `mapstructure:"schema"`
	Dump       string `mapstructure:"dump"`
	DocBase    string `mapstructure:"doc_base"`
	Mode       string `mapstructure:"mode"`
	Driver     string `mapstructure:"driver"`
	MaxDepth   int    `mapstructure:"max_depth"`
	Duplicates string `mapstructure:"duplicates"`
	Debug      bool   `mapstructure:"debug"`
}

// DefaultFile returns $HOME/.rawexplorer.yaml, or "" without a home directory.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rawexplorer.yaml")
}

// NewViper returns a viper instance with defaults and environment lookup set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySchema, "")
	v.SetDefault(KeyDump, "")
	v.SetDefault(KeyDocBase, "")
	v.SetDefault(KeyMode, explorer.Normal.String())
	v.SetDefault(KeyDriver, "go-json")
	v.SetDefault(KeyMaxDepth, 0)
	v.SetDefault(KeyDuplicates, rawexplorer.Ignore.String())
	v.SetDefault(KeyDebug, false)
	return v
}

// ReadFile merges the YAML config at path into v. A missing file is only an
// error when required is set.
func ReadFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := explorer.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, "invalid mode")
	}
	if _, ok := rawexplorer.DriverByName(c.Driver); !ok {
		return errors.Errorf("invalid driver %q, must be go-json or encoding/json", c.Driver)
	}
	if _, ok := rawexplorer.ParseSeverity(c.Duplicates); !ok {
		return errors.Errorf("invalid duplicates policy %q, must be ignore, warn or error", c.Duplicates)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// DisplayMode returns the parsed display mode.
func (c *Config) DisplayMode() explorer.Mode {
	m, _ := explorer.ParseMode(c.Mode)
	return m
}

// JSONDriver returns the configured token driver.
func (c *Config) JSONDriver() rawexplorer.JSONDriver {
	d, ok := rawexplorer.DriverByName(c.Driver)
	if !ok {
		return rawexplorer.CurrentJSONDriver()
	}
	return d
}

// BuildOpt returns the enforcement options for loading the dump. Warnings
// go to sink.
func (c *Config) BuildOpt(sink func(rawexplorer.Issue)) rawexplorer.BuildOpt {
	sev, _ := rawexplorer.ParseSeverity(c.Duplicates)
	return rawexplorer.BuildOpt{
		OnDuplicateKey: sev,
		MaxDepth:       c.MaxDepth,
		IssueSink:      sink,
	}
}
