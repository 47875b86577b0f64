package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config represents ~/.selectbox/config.yaml: the widget options the demo
// commands run with.
type Config struct {
	Placeholder      string `yaml:"placeholder"`
	KeepQuery        bool   `yaml:"keep_query"`
	TextfieldMovable bool   `yaml:"textfield_movable"`
	MenuHeight       int    `yaml:"menu_height"`
	Dataset          string `yaml:"dataset,omitempty"` // path to a dataset file; empty = built-in sample
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Placeholder: "Type to search…",
		MenuHeight:  8,
	}
}

// Parse parses config.yaml bytes, filling unset fields with defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.MenuHeight <= 0 {
		cfg.MenuHeight = Default().MenuHeight
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
