package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ghodss/yaml"
)

const (
	DefaultConfigFile = "./calculator.yml"
)

type Config struct {
	MenuPrompt        string `json:"menu_prompt"`
	ExpressionPrompt  string `json:"expression_prompt"`
	DecimalPlaces     int32  `json:"decimal_places"`
	DivisionPrecision int32  `json:"division_precision"`
}

func Default() Config {
	return Config{
		MenuPrompt:        "menu> ",
		ExpressionPrompt:  "> ",
		DecimalPlaces:     2,
		DivisionPrecision: 16,
	}
}

// Load reads a YAML config on top of the defaults. A missing file at the
// default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultConfigFile {
			return cfg, nil
		}
		return cfg, err
	}

	return Parse(data)
}

// Parse decodes YAML config bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DecimalPlaces < 0 {
		return cfg, fmt.Errorf("decimal_places must not be negative, got %d", cfg.DecimalPlaces)
	}
	if cfg.DivisionPrecision < cfg.DecimalPlaces {
		return cfg, fmt.Errorf("division_precision (%d) must be at least decimal_places (%d)", cfg.DivisionPrecision, cfg.DecimalPlaces)
	}

	return cfg, nil
}
