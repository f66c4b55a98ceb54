package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application settings file. All fields are optional; zero
// values fall back to the built-in defaults.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Tracer  TracerConfig   `yaml:"tracer"`
	Charges []ChargeConfig `yaml:"charges"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TracerConfig struct {
	AngularResolution int `yaml:"angular_resolution"`
	MaxSteps          int `yaml:"max_steps"`
}

// ChargeConfig is one initial scene charge. Zero-magnitude entries are
// skipped at load like any other rejected add.
type ChargeConfig struct {
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Z         float32 `yaml:"z"`
	Magnitude float32 `yaml:"magnitude"`
}

// Default returns the built-in settings: a 1920x1080 window and the classic
// dipole scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
			Title:  "Electric Field Simulator",
		},
		Tracer: TracerConfig{
			AngularResolution: 3,
			MaxSteps:          3000,
		},
		Charges: []ChargeConfig{
			{X: -8, Magnitude: 2.0},
			{X: 8, Magnitude: -2.0},
		},
	}
}

// Load reads the settings file at path. A missing file is not an error: the
// defaults are returned. A malformed file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Tracer.AngularResolution <= 0 {
		c.Tracer.AngularResolution = def.Tracer.AngularResolution
	}
	if c.Tracer.MaxSteps <= 0 {
		c.Tracer.MaxSteps = def.Tracer.MaxSteps
	}
	if c.Charges == nil {
		c.Charges = def.Charges
	}
}
