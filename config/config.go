package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const (
	defaultOut    = "public/dresses"
	defaultWidth  = 200
	defaultHeight = 400
)

type Config struct {
	// Output directory of the generated images
	Out string `yaml:"out,omitempty" json:"out,omitempty"`
	// Canvas width in pixels
	Width int `yaml:"width,omitempty" json:"width,omitempty"`
	// Canvas height in pixels
	Height int `yaml:"height,omitempty" json:"height,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Out:    defaultOut,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}

// Load loads the configuration from path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	loaded := &Config{}
	if err := yaml.Unmarshal(b, loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Override(loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override sets the non-zero fields of o on c.
func (c *Config) Override(o *Config) {
	if o == nil {
		return
	}
	if o.Out != "" {
		c.Out = o.Out
	}
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.Height != 0 {
		c.Height = o.Height
	}
}

// Validate reports an unusable configuration.
func (c *Config) Validate() error {
	if c.Out == "" {
		return fmt.Errorf("invalid config: out is empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid config: canvas size %dx%d", c.Width, c.Height)
	}
	return nil
}
