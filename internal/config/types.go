package config

import (
	"github.com/alexisbeaulieu97/genform/internal/catalog"
)

// Built-in defaults applied to any field the file leaves empty.
const (
	DefaultAspectRatio = catalog.AspectLandscape
	DefaultResolution  = catalog.ResolutionFullHD
	DefaultTheme       = "dark"
	DefaultOutput      = "yaml"
	DefaultLogLevel    = "info"
)

// Config is the optional genform configuration file.
type Config struct {
	Defaults    Defaults         `yaml:"defaults"`
	Placeholder string           `yaml:"placeholder,omitempty" validate:"max=200"`
	Theme       string           `yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Output      string           `yaml:"output,omitempty" validate:"omitempty,oneof=yaml json"`
	Log         LogConfig        `yaml:"log"`
	Catalog     *CatalogOverride `yaml:"catalog,omitempty"`
}

// Defaults seeds the form's initial values.
type Defaults struct {
	AspectRatio    string `yaml:"aspect_ratio,omitempty"`
	Resolution     string `yaml:"resolution,omitempty"`
	NegativePrompt string `yaml:"negative_prompt,omitempty" validate:"max=1000"`
}

// LogConfig controls where form diagnostics go.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// CatalogOverride replaces either built-in option list. A list left out
// keeps the built-in one.
type CatalogOverride struct {
	AspectRatios []catalog.AspectRatio `yaml:"aspect_ratios,omitempty" validate:"omitempty,unique=ID,dive"`
	Resolutions  []catalog.Resolution  `yaml:"resolutions,omitempty" validate:"omitempty,unique=ID,dive"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every empty field with its built-in value.
func (c *Config) ApplyDefaults() {
	if c.Defaults.AspectRatio == "" {
		c.Defaults.AspectRatio = DefaultAspectRatio
	}
	if c.Defaults.Resolution == "" {
		c.Defaults.Resolution = DefaultResolution
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Catalog returns the built-in catalog with any configured lists swapped in.
func (c *Config) Catalog() catalog.Catalog {
	merged := catalog.Default()
	if c == nil || c.Catalog == nil {
		return merged
	}
	if len(c.Catalog.AspectRatios) > 0 {
		merged.AspectRatios = c.Catalog.AspectRatios
	}
	if len(c.Catalog.Resolutions) > 0 {
		merged.Resolutions = c.Catalog.Resolutions
	}
	return merged
}
