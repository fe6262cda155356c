// Package config loads jsontable defaults from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/jsontable"
)

// ErrUnsupportedConfig is returned for config files with an unknown extension.
var ErrUnsupportedConfig = errors.New("unsupported config file")

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Color modes for header styling.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the defaults that command-line flags override.
type Config struct {
	Output     string `yaml:"output" toml:"output"`
	Border     string `yaml:"border" toml:"border"`
	PageSize   int    `yaml:"pagesize" toml:"pagesize"`
	Order      string `yaml:"order" toml:"order"`
	SortPolicy string `yaml:"sort_policy" toml:"sort_policy"`
	Color      string `yaml:"color" toml:"color"`
	MaxWidth   int    `yaml:"max_width" toml:"max_width"`
	NoHeader   bool   `yaml:"no_header" toml:"no_header"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:     jsontable.FormatTable.String(),
		Border:     jsontable.BorderASCII.String(),
		PageSize:   jsontable.DefaultPageSize,
		Order:      jsontable.Ascending.String(),
		SortPolicy: jsontable.PolicyLast.String(),
		Color:      ColorAuto,
	}
}

// fileNames are probed in order inside the user config directory.
var fileNames = []string{"config.yaml", "config.yml", "config.toml"}

// DefaultPath returns the first config file found under the user config
// directory, or false when there is none.
func DefaultPath() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	for _, name := range fileNames {
		p := filepath.Join(dir, "jsontable", name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Load reads path on top of [Default]. The format is chosen by extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of [Default]. ext is a file extension such as
// ".yaml" or ".toml". Unknown keys are rejected.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: extension %q", ErrUnsupportedConfig, ext)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := jsontable.ParseFormat(c.Output); err != nil {
		return err
	}
	if _, err := jsontable.ParseBorder(c.Border); err != nil {
		return err
	}
	if _, err := jsontable.ParsePolicy(c.SortPolicy); err != nil {
		return err
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w: pagesize %d must be at least 1", ErrInvalidConfig, c.PageSize)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max_width %d is negative", ErrInvalidConfig, c.MaxWidth)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, c.Color)
	}
	return nil
}
